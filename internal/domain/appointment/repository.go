package appointment

import (
	"context"

	"github.com/ultramind-solutions/agendepro/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// GetBusinessBySlug resolve o slug público: coluna indexada primeiro,
	// derivação a partir do nome para registros legados sem slug.
	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	// -------- Settings --------
	// GetSettings retorna (nil, nil) quando o negócio nunca configurou
	// a agenda; os defaults são aplicados em ScheduleFromSettings.
	GetSettings(
		ctx context.Context,
		businessID uint,
	) (*models.Settings, error)

	// -------- Service --------
	GetActiveService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
		businessID uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		businessID uint,
		name string,
		whatsapp string,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListBookedTimes retorna os horários HH:MM ocupados por agendamentos
	// não cancelados do negócio na data (projeção apenas de time).
	ListBookedTimes(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]string, error)

	GetAppointmentForBusiness(
		ctx context.Context,
		appointmentID uint,
		businessID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDate(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		businessID uint,
		year int,
		month int,
	) ([]models.Appointment, error)
}
