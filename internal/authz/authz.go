package authz

import (
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/token"
)

// OwnsRecord garante que a identidade autenticada pode agir sobre um
// registro de outra tabela: o shop do token tem que ser o dono da linha.
// Super admin passa direto. Função pura, sem consulta ao banco.
func OwnsRecord(role string, tokenShopID, recordShopID uint) error {
	if role == token.RoleAdmin {
		return nil
	}
	if tokenShopID != recordShopID {
		return httperr.ErrBusiness("ownership_mismatch")
	}
	return nil
}

// RequireRole valida o papel exigido pelo endpoint.
func RequireRole(role, required string) error {
	if role != required {
		return httperr.ErrBusiness("wrong_role")
	}
	return nil
}
