package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-saas/internal/authz"
	"github.com/BruksfildServices01/barber-saas/internal/config"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/token"
)

const (
	ContextSubject = "subject"
	ContextRole    = "role"
	ContextShopID  = "shopID"
	ContextSlug    = "slug"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		cl, err := token.Parse(cfg.JWTSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextSubject, cl.Subject)
		c.Set(ContextRole, cl.Role)
		c.Set(ContextShopID, cl.ShopID)
		c.Set(ContextSlug, cl.Slug)

		c.Next()
	}
}

// RequireRole protege grupos de rotas que exigem um papel específico.
// Papel errado é 401 com código próprio, não 403: o token é válido mas
// não serve para este endpoint.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if err := authz.RequireRole(role, required); err != nil {
			code, _ := httperr.BusinessCode(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}
		c.Next()
	}
}
