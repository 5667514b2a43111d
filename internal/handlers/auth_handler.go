package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/config"
	"github.com/ultramind-solutions/agendepro/internal/models"
	"github.com/ultramind-solutions/agendepro/internal/slug"
	"github.com/ultramind-solutions/agendepro/internal/timezone"
	"github.com/ultramind-solutions/agendepro/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	BusinessName     string `json:"business_name" binding:"required"`
	BusinessWhatsApp string `json:"business_whatsapp"`
	BusinessAddress  string `json:"business_address"`
	Instagram        string `json:"instagram"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	base := slug.Derive(req.BusinessName)
	if base == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_business_name"})
		return
	}

	// slug persistido na criação; colisão resolve com sufixo numérico
	candidate := base
	for n := 2; ; n++ {
		var taken int64
		h.db.Model(&models.Business{}).Where("slug = ?", candidate).Count(&taken)
		if taken == 0 {
			break
		}
		candidate = slug.WithSuffix(base, n)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	business := models.Business{
		UserID:    user.ID,
		Name:      req.BusinessName,
		Slug:      candidate,
		OwnerName: req.Name,
		Email:     email,
		Phone:     req.Phone,
		WhatsApp:  validators.NormalizeWhatsApp(req.BusinessWhatsApp),
		Instagram: req.Instagram,
		Address:   req.BusinessAddress,
		Timezone:  timezone.DefaultTimezone,
	}

	if err := h.db.Create(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_business"})
		return
	}

	token, err := h.generateToken(&user, business.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
		"business": gin.H{
			"id":            business.ID,
			"business_name": business.Name,
			"slug":          business.Slug,
			"whatsapp":      business.WhatsApp,
			"address":       business.Address,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	var business models.Business
	if err := h.db.Where("user_id = ?", user.ID).First(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "business_not_found"})
		return
	}

	token, err := h.generateToken(&user, business.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
		"business": gin.H{
			"id":            business.ID,
			"business_name": business.Name,
			"slug":          business.Slug,
			"whatsapp":      business.WhatsApp,
			"address":       business.Address,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, businessID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"businessId": businessID,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
