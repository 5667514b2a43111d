package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/httpresp"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

type AuditHandler struct {
	db *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// ListAuditLogs devolve a trilha de eventos do negócio, mais recentes
// primeiro. ?limit= controla o tamanho da página (máximo 200).
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	query := h.db.Where("business_id = ?", businessID)
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := query.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_audit_logs"})
		return
	}

	httpresp.List(c, logs)
}
