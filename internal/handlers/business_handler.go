package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/storage"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
	"github.com/ultramind-solutions/agendepro/internal/validators"
)

type BusinessHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	logos *storage.LogoStore
}

func NewBusinessHandler(db *gorm.DB, c *cache.Cache, logos *storage.LogoStore) *BusinessHandler {
	return &BusinessHandler{db: db, cache: c, logos: logos}
}

type UpdateBusinessRequest struct {
	Name        *string `json:"business_name"`
	OwnerName   *string `json:"owner_name"`
	Phone       *string `json:"phone"`
	WhatsApp    *string `json:"whatsapp"`
	Instagram   *string `json:"instagram"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Timezone    *string `json:"timezone"`
}

func (h *BusinessHandler) GetProfile(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "business_not_found"})
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "business_not_found"})
		return
	}

	// o slug nunca muda aqui; links públicos já distribuídos continuam válidos
	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.OwnerName != nil {
		business.OwnerName = *req.OwnerName
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.WhatsApp != nil {
		business.WhatsApp = validators.NormalizeWhatsApp(*req.WhatsApp)
	}
	if req.Instagram != nil {
		business.Instagram = *req.Instagram
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		business.Timezone = *req.Timezone
	}

	if err := h.db.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_business"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.BookingPageKey(business.Slug))

	c.JSON(http.StatusOK, business)
}

// UploadLogo recebe multipart com o campo "logo", reencoda e publica no
// bucket configurado. A URL resultante fica no perfil do negócio.
func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	if !h.logos.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logo_storage_not_configured"})
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_logo_file"})
		return
	}
	defer file.Close()

	url, err := h.logos.Upload(c.Request.Context(), businessID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_logo_image"})
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "business_not_found"})
		return
	}

	business.LogoURL = url
	if err := h.db.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_business"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.BookingPageKey(business.Slug))

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
