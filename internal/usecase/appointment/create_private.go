package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePrivateAppointmentInput struct {
	BusinessID uint
	UserID     uint

	ServiceID uint
	Date      string
	Time      string

	ClientName     string
	ClientWhatsApp string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePrivateAppointment é o fluxo do painel: mesmas regras de grade
// do fluxo público, mas o agendamento entra como pending e o WhatsApp
// do cliente é opcional.
type CreatePrivateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePrivateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CreatePrivateAppointment {
	return &CreatePrivateAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CreatePrivateAppointment) Execute(
	ctx context.Context,
	in CreatePrivateAppointmentInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyName)
	}

	phone := ""
	if strings.TrimSpace(in.ClientWhatsApp) != "" {
		phone = validators.NormalizeWhatsApp(in.ClientWhatsApp)
		if !validators.IsValidWhatsApp(phone) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidPhone)
		}
	}

	service, err := uc.repo.GetActiveService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	settings, err := uc.repo.GetSettings(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	sched := domain.ScheduleFromSettings(settings)

	bookable, err := sched.IsDateBookable(in.Date)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return nil, httperr.ErrBusiness(httperr.CodeDateNotBookable)
	}

	all, err := sched.Slots()
	if err != nil {
		return nil, err
	}
	if !contains(all, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.BusinessID, in.Date)
	if err != nil {
		return nil, err
	}
	if contains(booked, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	var clientID *uint
	if phone != "" {
		client, err := uc.repo.GetOrCreateClient(ctx, in.BusinessID, name, phone)
		if err != nil {
			return nil, err
		}
		clientID = &client.ID
	}

	ap := &models.Appointment{
		PublicID:       uuid.NewString(),
		BusinessID:     in.BusinessID,
		ClientID:       clientID,
		ServiceID:      &service.ID,
		ClientName:     name,
		ClientWhatsApp: phone,
		Date:           in.Date,
		Time:           in.Time,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     &in.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
