package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/httpresp"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/notify"
	usecase "github.com/ultramind-solutions/agendepro/internal/usecase/appointment"
)

// AppointmentHandler expõe o fluxo do painel: criação manual, listagens
// por dia e por mês e as transições de status.
type AppointmentHandler struct {
	db *gorm.DB

	createUC   *usecase.CreatePrivateAppointment
	confirmUC  *usecase.ConfirmAppointment
	cancelUC   *usecase.CancelAppointment
	completeUC *usecase.CompleteAppointment
	byDateUC   *usecase.ListAppointmentsByDate
	byMonthUC  *usecase.ListAppointmentsByMonth

	notifier *notify.WhatsApp
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *usecase.CreatePrivateAppointment,
	confirmUC *usecase.ConfirmAppointment,
	cancelUC *usecase.CancelAppointment,
	completeUC *usecase.CompleteAppointment,
	byDateUC *usecase.ListAppointmentsByDate,
	byMonthUC *usecase.ListAppointmentsByMonth,
	notifier *notify.WhatsApp,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
		notifier:   notifier,
	}
}

type CreateAppointmentRequest struct {
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientWhatsApp string `json:"client_whatsapp"`
	Notes          string `json:"notes"`
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreatePrivateAppointmentInput{
		BusinessID:     businessID,
		UserID:         userID,
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

	httpresp.Created(c, ap)
}

// ListAppointments devolve os agendamentos de um dia:
// GET /api/me/appointments?date=YYYY-MM-DD (sem data, o dia corrente).
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	items, err := h.byDateUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, items)
}

// ListAppointmentsByMonth é a visão de calendário:
// GET /api/me/appointments/month?year=2025&month=3
func (h *AppointmentHandler) ListAppointmentsByMonth(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_period", "Informe year e month numéricos válidos.")
		return
	}

	items, err := h.byMonthUC.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.transition(c, func(businessID, userID, id uint) (*models.Appointment, error) {
		return h.confirmUC.Execute(c.Request.Context(), businessID, userID, id)
	})
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.transition(c, func(businessID, userID, id uint) (*models.Appointment, error) {
		return h.cancelUC.Execute(c.Request.Context(), businessID, userID, id)
	})
}

func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.transition(c, func(businessID, userID, id uint) (*models.Appointment, error) {
		return h.completeUC.Execute(c.Request.Context(), businessID, userID, id)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	fn func(businessID, userID, id uint) (*models.Appointment, error),
) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador de agendamento inválido.")
		return
	}

	ap, err := fn(businessID, userID, uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// NotifyAppointment remonta as mensagens de WhatsApp de um agendamento
// existente, para reenvio manual pelo painel.
func (h *AppointmentHandler) NotifyAppointment(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador de agendamento inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Service").
		Where("id = ? AND business_id = ?", id, businessID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}

	serviceName := ""
	if ap.Service != nil {
		serviceName = ap.Service.Name
	}

	confirmation, err := h.notifier.Confirmation(notify.ConfirmationRequest{
		AppointmentID:    ap.PublicID,
		ClientName:       ap.ClientName,
		ClientWhatsApp:   ap.ClientWhatsApp,
		BusinessName:     business.Name,
		BusinessWhatsApp: business.WhatsApp,
		ServiceName:      serviceName,
		Date:             ap.Date,
		Time:             ap.Time,
	})
	if err != nil {
		httperr.BadRequest(c, "notification_unavailable",
			"O agendamento não tem os dados necessários para a mensagem.")
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
