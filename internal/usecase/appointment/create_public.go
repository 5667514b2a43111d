package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/notify"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
	"github.com/ultramind-solutions/agendepro/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreatePublicAppointmentInput struct {
	BusinessID uint

	ServiceID uint
	Date      string // YYYY-MM-DD
	Time      string // HH:MM

	ClientName     string
	ClientWhatsApp string
	Notes          string
}

type CreatePublicAppointmentOutput struct {
	Appointment  *models.Appointment  `json:"appointment"`
	Notification *notify.Confirmation `json:"notification,omitempty"`
}

// Notifier é o colaborador de mensagens. Apenas formata mensagens e
// deep links; nunca é autoridade sobre o estado do agendamento.
type Notifier interface {
	Confirmation(req notify.ConfirmationRequest) (*notify.Confirmation, error)
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicAppointment é o fluxo de agendamento da página pública
// (/agendar/:slug): valida os dados do cliente, reconfere o horário e
// grava o agendamento já confirmado.
type CreatePublicAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	notifier Notifier,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDisp,
		log:      log,
	}
}

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*CreatePublicAppointmentOutput, error) {

	// --------------------------------------------------
	// Validações locais: nenhuma escrita acontece antes
	// de todas passarem.
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyName)
	}

	phone := validators.NormalizeWhatsApp(in.ClientWhatsApp)
	if !validators.IsValidWhatsApp(phone) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPhone)
	}

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBusinessNotFound)
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

	// O horário é reconferido aqui, nunca assumido da lista (possivelmente
	// velha) que o cliente viu na tela.
	free, err := uc.availableSlots(ctx, in.BusinessID, sched, in.Date)
	if err != nil {
		return nil, err
	}
	if !contains(free, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// --------------------------------------------------
	// Escrita: agendamento nasce confirmado no fluxo público.
	// O índice único parcial (business, date, time) cobre a corrida
	// entre a reconferência e o insert.
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, in.BusinessID, name, phone)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(business.Timezone)

	ap := &models.Appointment{
		PublicID:       uuid.NewString(),
		BusinessID:     in.BusinessID,
		ClientID:       &client.ID,
		ServiceID:      &service.ID,
		ClientName:     name,
		ClientWhatsApp: phone,
		Date:           in.Date,
		Time:           in.Time,
		Status:         string(domain.StatusConfirmed),
		ConfirmedAt:    &now,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		Action:     "public_appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	// --------------------------------------------------
	// Mensageria: falha aqui nunca desfaz nem bloqueia o
	// agendamento já gravado.
	// --------------------------------------------------
	out := &CreatePublicAppointmentOutput{Appointment: ap}

	confirmation, err := uc.notifier.Confirmation(notify.ConfirmationRequest{
		AppointmentID:    ap.PublicID,
		ClientName:       name,
		ClientWhatsApp:   phone,
		BusinessName:     business.Name,
		BusinessWhatsApp: business.WhatsApp,
		ServiceName:      service.Name,
		Date:             in.Date,
		Time:             in.Time,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("appointment", ap.PublicID).Msg("whatsapp confirmation failed")
	} else {
		out.Notification = confirmation
	}

	return out, nil
}

func (uc *CreatePublicAppointment) availableSlots(
	ctx context.Context,
	businessID uint,
	sched domain.Schedule,
	date string,
) ([]string, error) {

	all, err := sched.Slots()
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		occupied[t] = struct{}{}
	}

	free := make([]string, 0, len(all))
	for _, t := range all {
		if _, taken := occupied[t]; !taken {
			free = append(free, t)
		}
	}

	return free, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
