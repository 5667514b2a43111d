package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewSettingsHandler(db *gorm.DB, c *cache.Cache) *SettingsHandler {
	return &SettingsHandler{db: db, cache: c}
}

type UpdateSettingsRequest struct {
	WorkingDays         []string `json:"working_days"`
	WorkingHoursStart   string   `json:"working_hours_start"`
	WorkingHoursEnd     string   `json:"working_hours_end"`
	AppointmentInterval int      `json:"appointment_interval"`

	AutoConfirm   *bool   `json:"auto_confirm"`
	SendReminders *bool   `json:"send_reminders"`
	ReminderHours *int    `json:"reminder_hours"`
	Theme         *string `json:"theme"`
	Language      *string `json:"language"`
}

// GetSettings devolve o registro salvo (se houver) e a agenda efetiva,
// com os defaults já aplicados.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var settings models.Settings
	err := h.db.Where("business_id = ?", businessID).First(&settings).Error

	var saved *models.Settings
	if err == nil {
		saved = &settings
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}

	sched := domain.ScheduleFromSettings(saved)

	c.JSON(http.StatusOK, gin.H{
		"settings": saved,
		"effective_schedule": gin.H{
			"working_days":         sched.Days,
			"working_hours_start":  sched.Start,
			"working_hours_end":    sched.End,
			"appointment_interval": sched.Interval,
		},
	})
}

// UpdateSettings valida e grava a configuração de agenda (upsert). A
// combinação início/fim/intervalo precisa gerar uma grade não vazia.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, day := range req.WorkingDays {
		if !domain.IsValidWeekday(day) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_configuration",
				"message": "Dia de atendimento inválido: " + day,
			})
			return
		}
	}

	if req.WorkingHoursStart != "" || req.WorkingHoursEnd != "" || req.AppointmentInterval != 0 {
		start, end, interval := req.WorkingHoursStart, req.WorkingHoursEnd, req.AppointmentInterval
		defaults := domain.DefaultSchedule()
		if start == "" {
			start = defaults.Start
		}
		if end == "" {
			end = defaults.End
		}
		if interval == 0 {
			interval = defaults.Interval
		}

		slots, err := domain.GenerateSlots(start, end, interval)
		if err != nil || len(slots) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_configuration",
				"message": "Horário de atendimento não gera nenhum slot válido.",
			})
			return
		}
	}

	var settings models.Settings
	err := h.db.Where("business_id = ?", businessID).First(&settings).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}
	settings.BusinessID = businessID

	if req.WorkingDays != nil {
		if err := settings.SetWorkingDays(req.WorkingDays); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_configuration"})
			return
		}
	}
	if req.WorkingHoursStart != "" {
		settings.WorkingHoursStart = req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != "" {
		settings.WorkingHoursEnd = req.WorkingHoursEnd
	}
	if req.AppointmentInterval != 0 {
		settings.AppointmentInterval = req.AppointmentInterval
	}
	if req.AutoConfirm != nil {
		settings.AutoConfirm = *req.AutoConfirm
	}
	if req.SendReminders != nil {
		settings.SendReminders = *req.SendReminders
	}
	if req.ReminderHours != nil {
		settings.ReminderHours = *req.ReminderHours
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}

	if err := h.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_settings"})
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err == nil {
		h.cache.Invalidate(c.Request.Context(), cache.BookingPageKey(business.Slug))
	}

	c.JSON(http.StatusOK, settings)
}
