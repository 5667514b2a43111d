package appointment

import (
	"context"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

// Execute confirma um agendamento pendente do painel. A confirmação é
// uma única escrita atômica aqui; a mensageria nunca grava status.
func (uc *ConfirmAppointment) Execute(
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
	if err := domain.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "appointment_confirmed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
