package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/cache"
	"github.com/BruksfildServices01/barber-saas/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
	"github.com/BruksfildServices01/barber-saas/internal/storage"
)

type ShopHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	uploader *storage.Uploader
}

func NewShopHandler(db *gorm.DB, cc *cache.Cache, up *storage.Uploader) *ShopHandler {
	return &ShopHandler{db: db, cache: cc, uploader: up}
}

// --------- Requests ---------

// Campos nil não mudam nada; string vazia explícita limpa o campo.
type UpdateShopRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// --------- Handlers ---------

func (h *ShopHandler) loadShop(c *gin.Context) (*models.Barbershop, bool) {
	shopID, _, _ := shopScope(c)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return nil, false
	}
	return &shop, true
}

func (h *ShopHandler) GetMe(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) UpdateMe(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.LogoURL != nil {
		shop.LogoURL = *req.LogoURL
	}

	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	h.cache.InvalidateShop(c.Request.Context(), shop.Slug)
	c.JSON(http.StatusOK, shop)
}

// --------- Weekly hours ---------

// GetHours devolve a semana parseada. JSON corrompido no banco vira a
// semana padrão na resposta, mesma leniência do validador de slots.
func (h *ShopHandler) GetHours(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	week, err := schedule.Parse(shop.OpeningHours)
	if err != nil || week == nil {
		week = schedule.Default()
	}

	c.JSON(http.StatusOK, week)
}

func (h *ShopHandler) UpdateHours(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	var week schedule.Week
	if err := c.ShouldBindJSON(&week); err != nil {
		httperr.BadRequest(c, "invalid_request", "Configuração de horários inválida.")
		return
	}

	if err := schedule.ValidateWeek(week); err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Configuração de horários inválida.")
			return
		}
		httperr.BadRequest(c, "invalid_week", "Configuração de horários inválida.")
		return
	}

	raw, err := schedule.Serialize(week)
	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar horários.")
		return
	}

	shop.OpeningHours = raw
	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar horários.")
		return
	}

	h.cache.InvalidateShop(c.Request.Context(), shop.Slug)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Logo upload ---------

func (h *ShopHandler) UploadLogo(c *gin.Context) {
	shop, ok := h.loadShop(c)
	if !ok {
		return
	}

	if !h.uploader.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de imagens não configurado.")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem obrigatório.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}

	converted, err := storage.ToWebp(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (jpeg ou png).")
		return
	}

	url, err := h.uploader.UploadWebp(c.Request.Context(), "logos", converted)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	shop.LogoURL = url
	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar a logo.")
		return
	}

	h.cache.InvalidateShop(c.Request.Context(), shop.Slug)
	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
