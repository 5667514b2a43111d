package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/httpresp"
	"github.com/ultramind-solutions/agendepro/internal/models"
	usecase "github.com/ultramind-solutions/agendepro/internal/usecase/appointment"
)

// PublicHandler atende a página pública de agendamento, sem autenticação.
// O negócio é sempre resolvido pelo slug da URL.
type PublicHandler struct {
	repo  domain.Repository
	cache *cache.Cache

	availabilityUC *usecase.GetAvailability
	createUC       *usecase.CreatePublicAppointment
}

func NewPublicHandler(
	repo domain.Repository,
	c *cache.Cache,
	availabilityUC *usecase.GetAvailability,
	createUC *usecase.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{
		repo:           repo,
		cache:          c,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

// BookingPage é o payload completo da página /agendar/:slug: perfil do
// negócio, serviços ativos e a agenda efetiva. É o que vai para o cache.
type BookingPage struct {
	Business BookingPageBusiness `json:"business"`
	Services []models.Service    `json:"services"`
	Schedule BookingPageSchedule `json:"schedule"`
}

type BookingPageBusiness struct {
	ID          uint   `json:"id"`
	Name        string `json:"business_name"`
	Slug        string `json:"slug"`
	WhatsApp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Address     string `json:"address"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Timezone    string `json:"timezone"`
}

type BookingPageSchedule struct {
	WorkingDays         []string `json:"working_days"`
	WorkingHoursStart   string   `json:"working_hours_start"`
	WorkingHoursEnd     string   `json:"working_hours_end"`
	AppointmentInterval int      `json:"appointment_interval"`
}

func (h *PublicHandler) resolveBusiness(c *gin.Context) (*models.Business, bool) {
	slug := c.Param("slug")

	business, err := h.repo.GetBusinessBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, httperr.CodeBusinessNotFound, "Negócio não encontrado.")
		return nil, false
	}
	return business, true
}

// GetBookingPage monta (ou serve do cache) o payload da página pública.
func (h *PublicHandler) GetBookingPage(c *gin.Context) {
	slug := c.Param("slug")

	var page BookingPage
	if h.cache.GetJSON(c.Request.Context(), cache.BookingPageKey(slug), &page) {
		c.JSON(http.StatusOK, page)
		return
	}

	business, ok := h.resolveBusiness(c)
	if !ok {
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), business.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}

	settings, err := h.repo.GetSettings(c.Request.Context(), business.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}
	sched := domain.ScheduleFromSettings(settings)

	page = BookingPage{
		Business: BookingPageBusiness{
			ID:          business.ID,
			Name:        business.Name,
			Slug:        business.Slug,
			WhatsApp:    business.WhatsApp,
			Instagram:   business.Instagram,
			Address:     business.Address,
			Description: business.Description,
			LogoURL:     business.LogoURL,
			Timezone:    business.Timezone,
		},
		Services: services,
		Schedule: BookingPageSchedule{
			WorkingDays:         sched.Days,
			WorkingHoursStart:   sched.Start,
			WorkingHoursEnd:     sched.End,
			AppointmentInterval: sched.Interval,
		},
	}

	// a chave é o slug da URL; em slug legado derivado o backfill já
	// gravou o mesmo valor no registro
	h.cache.SetJSON(c.Request.Context(), cache.BookingPageKey(slug), page)

	c.JSON(http.StatusOK, page)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	business, ok := h.resolveBusiness(c)
	if !ok {
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), business.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}

	httpresp.List(c, services)
}

// GetAvailability responde os horários livres de uma data:
// GET /api/public/:slug/availability?date=YYYY-MM-DD
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	business, ok := h.resolveBusiness(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data desejada (?date=AAAA-MM-DD).")
		return
	}

	availability, err := h.availabilityUC.Execute(c.Request.Context(), business.ID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

type PublicAppointmentRequest struct {
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientWhatsApp string `json:"client_whatsapp" binding:"required"`
	Notes          string `json:"notes"`
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	business, ok := h.resolveBusiness(c)
	if !ok {
		return
	}

	var req PublicAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), usecase.CreatePublicAppointmentInput{
		BusinessID:     business.ID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		ClientName:     req.ClientName,
		ClientWhatsApp: req.ClientWhatsApp,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, out)
}
