package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	"github.com/ultramind-solutions/agendepro/internal/httpresp"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	query := h.db.Where("business_id = ?", businessID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var services []models.Service
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Status:      models.ServiceStatusActive,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.invalidatePublicPage(c, businessID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Status != nil &&
		*req.Status != models.ServiceStatusActive &&
		*req.Status != models.ServiceStatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	var service models.Service
	if err := h.db.Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_service"})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.invalidatePublicPage(c, businessID)
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) invalidatePublicPage(c *gin.Context, businessID uint) {
	var business models.Business
	if err := h.db.First(&business, businessID).Error; err == nil {
		h.cache.Invalidate(c.Request.Context(), cache.BookingPageKey(business.Slug))
	}
}
