package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos nos tokens emitidos pelo login.
const (
	RoleShop  = "shop"
	RoleAdmin = "admin"
)

// Durações de vida do token. O login emite o curto por padrão;
// "remember" pede o longo.
const (
	DefaultTTL  = 15 * time.Minute
	RememberTTL = 24 * time.Hour
)

var (
	ErrInvalid     = jwt.ErrTokenMalformed
	ErrMissingRole = jwt.ErrTokenInvalidClaims
)

type Claims struct {
	Subject string
	Role    string
	ShopID  uint
	Slug    string
}

func Generate(secret string, cl Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  cl.Subject,
		"role": cl.Role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	if cl.Role == RoleShop {
		claims["shopId"] = cl.ShopID
		claims["slug"] = cl.Slug
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse valida assinatura e expiração e extrai as claims.
func Parse(secret, tokenString string) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalid
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}

	sub, _ := mc["sub"].(string)
	role, _ := mc["role"].(string)
	if role != RoleShop && role != RoleAdmin {
		return Claims{}, ErrMissingRole
	}

	cl := Claims{Subject: sub, Role: role}
	if shopID, ok := mc["shopId"].(float64); ok {
		cl.ShopID = uint(shopID)
	}
	if slug, ok := mc["slug"].(string); ok {
		cl.Slug = slug
	}

	return cl, nil
}
