package appointment

import (
	"context"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CompleteAppointment) Execute(
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
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
