package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/token"
)

func TestOwnsRecord(t *testing.T) {
	// dona do registro
	assert.NoError(t, OwnsRecord(token.RoleShop, 7, 7))

	// registro de outra barbearia
	err := OwnsRecord(token.RoleShop, 7, 8)
	assert.True(t, httperr.IsBusiness(err, "ownership_mismatch"))

	// admin ignora dono
	assert.NoError(t, OwnsRecord(token.RoleAdmin, 0, 8))
	assert.NoError(t, OwnsRecord(token.RoleAdmin, 123, 8))
}

func TestRequireRole(t *testing.T) {
	assert.NoError(t, RequireRole(token.RoleShop, token.RoleShop))

	err := RequireRole(token.RoleShop, token.RoleAdmin)
	assert.True(t, httperr.IsBusiness(err, "wrong_role"))
}
