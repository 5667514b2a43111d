package appointment

import (
	"context"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

// Execute cancela um agendamento pendente ou confirmado. Agendamentos
// cancelados deixam de ocupar o horário na grade.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForBusiness(ctx, appointmentID, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(business.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
