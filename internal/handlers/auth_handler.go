package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-saas/internal/config"
	"github.com/BruksfildServices01/barber-saas/internal/models"
	"github.com/BruksfildServices01/barber-saas/internal/token"
)

// CredentialStore resolve credenciais de login por e-mail.
// Retorna (nil, nil) quando a credencial não existe; erro só para
// falha de infra.
type CredentialStore interface {
	ShopByEmail(email string) (*models.Barbershop, error)
	AdminByEmail(email string) (*models.SuperAdmin, error)
}

type AuthHandler struct {
	creds  CredentialStore
	config *config.Config
}

func NewAuthHandler(creds CredentialStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{creds: creds, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`

	// true pede o token longo (24h) em vez do padrão (15min)
	Remember bool `json:"remember"`
}

// --------- Handlers ---------

// Login resolve a credencial para barbearia ou super admin.
// Falha é sempre o mesmo invalid_credentials: nunca revelamos se o
// e-mail existe. Suspensão só é checada aqui, nunca por request.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Username))

	ttl := token.DefaultTTL
	if req.Remember {
		ttl = token.RememberTTL
	}

	// -------- Barbearia --------
	shop, err := h.creds.ShopByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if shop != nil {
		if bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}

		if !shop.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account_suspended"})
			return
		}

		signed, err := token.Generate(h.config.JWTSecret, token.Claims{
			Subject: shop.Email,
			Role:    token.RoleShop,
			ShopID:  shop.ID,
			Slug:    shop.Slug,
		}, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": signed,
			"role":         token.RoleShop,
			"slug":         shop.Slug,
		})
		return
	}

	// -------- Super admin --------
	admin, err := h.creds.AdminByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	signed, err := token.Generate(h.config.JWTSecret, token.Claims{
		Subject: admin.Email,
		Role:    token.RoleAdmin,
	}, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"role":         token.RoleAdmin,
		"slug":         "",
	})
}
