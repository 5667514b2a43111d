package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/notify"
)

var errNotFound = errors.New("not found")

// stubRepo é a implementação em memória do repositório para os testes
// de caso de uso. Replica a semântica relevante do banco: horários
// cancelados liberam o slot e o insert rejeita slot duplicado.
type stubRepo struct {
	business     *models.Business
	settings     *models.Settings
	services     []models.Service
	clients      []models.Client
	appointments []models.Appointment

	nextID uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		business: &models.Business{
			ID:       1,
			Name:     "Salão Premium",
			Slug:     "salao-premium",
			WhatsApp: "11988887777",
			Timezone: "America/Sao_Paulo",
		},
		services: []models.Service{
			{ID: 1, BusinessID: 1, Name: "Corte", Price: 50, Status: models.ServiceStatusActive},
			{ID: 2, BusinessID: 1, Name: "Coloração", Price: 120, Status: models.ServiceStatusInactive},
		},
		nextID: 1,
	}
}

func (r *stubRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if r.business != nil && r.business.ID == id {
		return r.business, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) GetBusinessBySlug(_ context.Context, slug string) (*models.Business, error) {
	if r.business != nil && r.business.Slug == slug {
		return r.business, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) GetSettings(_ context.Context, businessID uint) (*models.Settings, error) {
	if r.settings != nil && r.settings.BusinessID == businessID {
		return r.settings, nil
	}
	return nil, nil
}

func (r *stubRepo) GetActiveService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		s := &r.services[i]
		if s.BusinessID == businessID && s.ID == serviceID && s.Status == models.ServiceStatusActive {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (r *stubRepo) ListActiveServices(_ context.Context, businessID uint) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range r.services {
		if s.BusinessID == businessID && s.Status == models.ServiceStatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubRepo) GetOrCreateClient(_ context.Context, businessID uint, name, whatsapp string) (*models.Client, error) {
	for i := range r.clients {
		c := &r.clients[i]
		if c.BusinessID == businessID && c.WhatsApp == whatsapp {
			return c, nil
		}
	}

	client := models.Client{
		ID:         uint(len(r.clients) + 1),
		BusinessID: businessID,
		Name:       name,
		WhatsApp:   whatsapp,
	}
	r.clients = append(r.clients, client)
	return &r.clients[len(r.clients)-1], nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.BusinessID == ap.BusinessID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			domain.Status(existing.Status).Occupies() {
			return fmt.Errorf("duplicate slot %s %s", ap.Date, ap.Time)
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *stubRepo) ListBookedTimes(_ context.Context, businessID uint, date string) ([]string, error) {
	out := []string{}
	for _, ap := range r.appointments {
		if ap.BusinessID == businessID && ap.Date == date && domain.Status(ap.Status).Occupies() {
			out = append(out, ap.Time)
		}
	}
	return out, nil
}

func (r *stubRepo) GetAppointmentForBusiness(_ context.Context, appointmentID, businessID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		ap := &r.appointments[i]
		if ap.ID == appointmentID && ap.BusinessID == businessID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (r *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *stubRepo) ListAppointmentsForDate(_ context.Context, businessID uint, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.BusinessID == businessID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsForMonth(_ context.Context, businessID uint, year, month int) ([]models.Appointment, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.BusinessID == businessID && len(ap.Date) >= len(prefix) && ap.Date[:len(prefix)] == prefix {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)

// mustSetWorkingDays evita repetir o tratamento de erro nos testes.
func mustSetWorkingDays(s *models.Settings, days []string) *models.Settings {
	if err := s.SetWorkingDays(days); err != nil {
		panic(err)
	}
	return s
}

func testAudit() *audit.Dispatcher {
	return nil
}

// failingNotifier simula indisponibilidade da mensageria.
type failingNotifier struct{}

func (failingNotifier) Confirmation(notify.ConfirmationRequest) (*notify.Confirmation, error) {
	return nil, errors.New("notifier down")
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
