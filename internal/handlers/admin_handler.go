package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	"github.com/BruksfildServices01/barber-saas/internal/cache"
	"github.com/BruksfildServices01/barber-saas/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
	"github.com/BruksfildServices01/barber-saas/internal/validators"
)

// AdminHandler expõe o painel da plataforma (papel admin):
// gestão do ciclo de vida das barbearias.
type AdminHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, cc *cache.Cache, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, cache: cc, audit: dispatcher}
}

// --------- Requests ---------

type CreateShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
}

// --------- Handlers ---------

func (h *AdminHandler) ListShops(c *gin.Context) {
	var shops []models.Barbershop
	if err := h.db.Order("id ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	c.JSON(http.StatusOK, shops)
}

func (h *AdminHandler) CreateShop(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Barbershop{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "slug_already_exists", "Já existe uma barbearia com este slug.")
		return
	}

	h.db.Model(&models.Barbershop{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "Já existe uma barbearia com este e-mail.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	week, err := schedule.Serialize(schedule.Default())
	if err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Erro ao criar barbearia.")
		return
	}

	shop := models.Barbershop{
		Name:         req.Name,
		Slug:         slug,
		Email:        email,
		PasswordHash: string(hashed),
		Address:      req.Address,
		IsActive:     true,
		OpeningHours: week,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		// Outro create pode ter vencido a corrida entre a checagem
		// de unicidade e o insert.
		if isDuplicateKey(err) {
			httperr.Conflict(c, "barbershop_already_exists", "Já existe uma barbearia com este slug ou e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_create_barbershop", "Erro ao criar barbearia.")
		return
	}

	_, _, subject := shopScope(c)
	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Actor:        subject,
		Action:       "barbershop_created",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	c.JSON(http.StatusCreated, shop)
}

func (h *AdminHandler) loadShop(c *gin.Context) (*models.Barbershop, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar barbearia.")
		return nil, false
	}
	return &shop, true
}

// ToggleStatus suspende ou reativa o login da barbearia. Tokens já
// emitidos continuam válidos até expirar.
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	shop.IsActive = !shop.IsActive
	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao atualizar barbearia.")
		return
	}

	action := "barbershop_suspended"
	if shop.IsActive {
		action = "barbershop_reactivated"
	}

	_, _, subject := shopScope(c)
	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Actor:        subject,
		Action:       action,
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	c.JSON(http.StatusOK, shop)
}

// DeleteShop remove a barbearia e, por cascata, serviços, barbeiros,
// agendamentos e lançamentos de caixa.
func (h *AdminHandler) DeleteShop(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.Booking{},
			&models.CashEntry{},
			&models.Service{},
			&models.Barber{},
		} {
			if err := tx.Where("barbershop_id = ?", shop.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(shop).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barbershop", "Erro ao remover barbearia.")
		return
	}

	h.cache.InvalidateShop(c.Request.Context(), shop.Slug)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
