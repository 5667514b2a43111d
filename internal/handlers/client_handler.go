package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/httpresp"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	WhatsApp *string `json:"whatsapp"`
	Email    *string `json:"email"`
	Notes    *string `json:"notes"`
}

// ListClients aceita ?q= para busca por nome ou whatsapp.
func (h *ClientHandler) ListClients(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	query := h.db.Where("business_id = ?", businessID)
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR whats_app LIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_client_id"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var client models.Client
	if err := h.db.Where("id = ? AND business_id = ?", clientID, businessID).
		First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_client"})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.WhatsApp != nil {
		client.WhatsApp = validators.NormalizeWhatsApp(*req.WhatsApp)
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}
