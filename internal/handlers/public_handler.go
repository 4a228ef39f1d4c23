package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/cache"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPublicHandler(db *gorm.DB, cc *cache.Cache) *PublicHandler {
	return &PublicHandler{db: db, cache: cc}
}

////////////////////////////////////////////////////////
// DIRECTORY
////////////////////////////////////////////////////////

type PublicShopDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address"`
	LogoURL string `json:"logo_url"`
}

func (h *PublicHandler) ListShops(c *gin.Context) {
	var shops []models.Barbershop
	if err := h.db.Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	out := make([]PublicShopDTO, 0, len(shops))
	for _, s := range shops {
		out = append(out, PublicShopDTO{
			ID:      s.ID,
			Name:    s.Name,
			Slug:    s.Slug,
			Address: s.Address,
			LogoURL: s.LogoURL,
		})
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// SHOP PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) shopBySlug(c *gin.Context, slug string) (*models.Barbershop, bool) {
	if shop, ok := h.cache.GetShop(c.Request.Context(), slug); ok {
		return shop, true
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}

	h.cache.SetShop(c.Request.Context(), &shop)
	return &shop, true
}

func (h *PublicHandler) GetShop(c *gin.Context) {
	shop, ok := h.shopBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	var services []models.Service
	h.db.Where("barbershop_id = ?", shop.ID).Order("id ASC").Find(&services)

	c.JSON(http.StatusOK, gin.H{
		"id":            shop.ID,
		"name":          shop.Name,
		"slug":          shop.Slug,
		"address":       shop.Address,
		"logo_url":      shop.LogoURL,
		"opening_hours": shop.OpeningHours,
		"services":      services,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	shop, ok := h.shopBySlug(c, c.Param("slug"))
	if !ok {
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}
