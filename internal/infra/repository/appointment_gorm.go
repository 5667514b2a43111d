package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/slug"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *AppointmentGormRepository) GetBusinessBySlug(
	ctx context.Context,
	s string,
) (*models.Business, error) {

	var business models.Business
	err := r.db.WithContext(ctx).
		Where("slug = ?", s).
		First(&business).Error
	if err == nil {
		return &business, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Registros legados não têm slug persistido: varre os negócios com
	// nome preenchido, deriva e faz backfill no primeiro acesso.
	var legacy []models.Business
	if err := r.db.WithContext(ctx).
		Where("(slug = '' OR slug IS NULL) AND name <> ''").
		Find(&legacy).Error; err != nil {
		return nil, err
	}

	for i := range legacy {
		if slug.Derive(legacy[i].Name) != s {
			continue
		}

		// backfill é melhor esforço; a resolução em si já deu certo
		legacy[i].Slug = s
		r.db.WithContext(ctx).Model(&legacy[i]).Update("slug", s)
		return &legacy[i], nil
	}

	return nil, gorm.ErrRecordNotFound
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSettings(
	ctx context.Context,
	businessID uint,
) (*models.Settings, error) {

	var settings models.Settings
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		First(&settings).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND status = ?",
			serviceID, businessID, models.ServiceStatusActive).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	businessID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND status = ?", businessID, models.ServiceStatusActive).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	businessID uint,
	name string,
	whatsapp string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND whats_app = ?", businessID, whatsapp).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BusinessID: businessID,
		Name:       name,
		WhatsApp:   whatsapp,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// índice único parcial (business_id, date, time) com status
		// não cancelado: corrida entre reconferência e insert
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	businessID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("business_id = ? AND date = ? AND status <> ?",
			businessID, date, string(domain.StatusCancelled)).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *AppointmentGormRepository) GetAppointmentForBusiness(
	ctx context.Context,
	appointmentID uint,
	businessID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	businessID uint,
	date string,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("business_id = ? AND date = ?", businessID, date).
		Order("time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForMonth(
	ctx context.Context,
	businessID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("business_id = ? AND date LIKE ?", businessID, prefix).
		Order("date ASC, time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
