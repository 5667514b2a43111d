package appointment

import (
	"context"

	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

// AppointmentListItem é a projeção de listagem do painel.
type AppointmentListItem struct {
	ID          uint    `json:"id"`
	PublicID    string  `json:"public_id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	businessID uint,
	date string,
) ([]AppointmentListItem, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	businessID uint,
	year int,
	month int,
) ([]AppointmentListItem, error) {

	appointments, err := uc.repo.ListAppointmentsForMonth(ctx, businessID, year, month)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

func toListItems(appointments []models.Appointment) []AppointmentListItem {
	out := make([]AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		item := AppointmentListItem{
			ID:         ap.ID,
			PublicID:   ap.PublicID,
			Date:       ap.Date,
			Time:       ap.Time,
			Status:     ap.Status,
			ClientName: ap.ClientName,
			Notes:      ap.Notes,
		}
		if ap.Service != nil {
			item.ServiceName = ap.Service.Name
			item.Price = ap.Service.Price
		}
		out = append(out, item)
	}
	return out
}
