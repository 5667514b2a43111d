package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/logging"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/notify"
	usecase "github.com/ultramind-solutions/agendepro/internal/usecase/appointment"
)

// fakeRepo cobre só o que as rotas públicas tocam.
type fakeRepo struct {
	business     *models.Business
	services     []models.Service
	appointments []models.Appointment
	clients      []models.Client
}

func (r *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if r.business != nil && r.business.ID == id {
		return r.business, nil
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) GetBusinessBySlug(_ context.Context, slug string) (*models.Business, error) {
	if r.business != nil && r.business.Slug == slug {
		return r.business, nil
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) GetSettings(_ context.Context, _ uint) (*models.Settings, error) {
	return nil, nil
}

func (r *fakeRepo) GetActiveService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		s := &r.services[i]
		if s.BusinessID == businessID && s.ID == serviceID && s.Status == models.ServiceStatusActive {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) ListActiveServices(_ context.Context, businessID uint) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range r.services {
		if s.BusinessID == businessID && s.Status == models.ServiceStatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, businessID uint, name, whatsapp string) (*models.Client, error) {
	client := models.Client{ID: uint(len(r.clients) + 1), BusinessID: businessID, Name: name, WhatsApp: whatsapp}
	r.clients = append(r.clients, client)
	return &r.clients[len(r.clients)-1], nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(r.appointments) + 1)
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, businessID uint, date string) ([]string, error) {
	out := []string{}
	for _, ap := range r.appointments {
		if ap.BusinessID == businessID && ap.Date == date && domain.Status(ap.Status).Occupies() {
			out = append(out, ap.Time)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointmentForBusiness(_ context.Context, _, _ uint) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (r *fakeRepo) ListAppointmentsForDate(_ context.Context, _ uint, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) ListAppointmentsForMonth(_ context.Context, _ uint, _, _ int) ([]models.Appointment, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func publicRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logging.New("test")
	pageCache := cache.New("", log)

	availabilityUC := usecase.NewGetAvailability(repo)
	createUC := usecase.NewCreatePublicAppointment(repo, notify.NewWhatsApp(), nil, log)
	h := NewPublicHandler(repo, pageCache, availabilityUC, createUC)

	r := gin.New()
	r.GET("/agendar/:slug", h.GetBookingPage)
	r.GET("/api/public/:slug/services", h.ListServices)
	r.GET("/api/public/:slug/availability", h.GetAvailability)
	r.POST("/api/public/:slug/appointments", h.CreateAppointment)
	return r
}

func seededRepo() *fakeRepo {
	return &fakeRepo{
		business: &models.Business{
			ID: 1, Name: "Salão Premium", Slug: "salao-premium",
			WhatsApp: "11988887777", Timezone: "America/Sao_Paulo",
		},
		services: []models.Service{
			{ID: 1, BusinessID: 1, Name: "Corte", Price: 50, Status: models.ServiceStatusActive},
		},
	}
}

func TestGetBookingPage(t *testing.T) {
	r := publicRouter(seededRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agendar/salao-premium", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page BookingPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "Salão Premium", page.Business.Name)
	assert.Len(t, page.Services, 1)
	assert.Equal(t, "09:00", page.Schedule.WorkingHoursStart)
	assert.Equal(t, 30, page.Schedule.AppointmentInterval)
}

func TestGetBookingPage_SlugDesconhecido(t *testing.T) {
	r := publicRouter(seededRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agendar/nao-existe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "business_not_found")
}

func TestGetAvailability_HTTP(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		BusinessID: 1, Date: "2025-03-03", Time: "09:00", Status: "confirmado",
	})
	r := publicRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/salao-premium/availability?date=2025-03-03", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Bookable bool     `json:"bookable"`
		Slots    []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Bookable)
	assert.NotContains(t, out.Slots, "09:00")
	assert.Contains(t, out.Slots, "09:30")
}

func TestGetAvailability_SemData(t *testing.T) {
	r := publicRouter(seededRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/salao-premium/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_date")
}

func TestCreatePublicAppointment_HTTP(t *testing.T) {
	repo := seededRepo()
	r := publicRouter(repo)

	body := `{
		"service_id": 1,
		"date": "2025-03-03",
		"time": "10:00",
		"client_name": "Maria Silva",
		"client_whatsapp": "(11) 98888-7777"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/salao-premium/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.appointments, 1)
	assert.Equal(t, "confirmado", repo.appointments[0].Status)

	var out struct {
		Appointment struct {
			PublicID string `json:"public_id"`
			Status   string `json:"status"`
		} `json:"appointment"`
		Notification *struct {
			ClientWhatsAppURL string `json:"clientWhatsAppUrl"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Appointment.PublicID)
	require.NotNil(t, out.Notification)
	assert.Contains(t, out.Notification.ClientWhatsAppURL, "5511988887777")
}

func TestCreatePublicAppointment_HorarioOcupadoViraConflito(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		BusinessID: 1, Date: "2025-03-03", Time: "10:00", Status: "confirmado",
	})
	r := publicRouter(repo)

	body := `{
		"service_id": 1,
		"date": "2025-03-03",
		"time": "10:00",
		"client_name": "Maria Silva",
		"client_whatsapp": "11988887777"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/salao-premium/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_unavailable")
	require.Len(t, repo.appointments, 1)
}

func TestCreatePublicAppointment_TelefoneInvalido(t *testing.T) {
	repo := seededRepo()
	r := publicRouter(repo)

	body := `{
		"service_id": 1,
		"date": "2025-03-03",
		"time": "10:00",
		"client_name": "Maria Silva",
		"client_whatsapp": "123"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/salao-premium/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_phone")
	assert.Empty(t, repo.appointments)
}
