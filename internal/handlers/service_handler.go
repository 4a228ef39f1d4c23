package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/authz"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
	"github.com/BruksfildServices01/barber-saas/internal/storage"
)

type ServiceHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewServiceHandler(db *gorm.DB, up *storage.Uploader) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: up}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	shopID, _, _ := shopScope(c)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID, _, _ := shopScope(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		BarbershopID: shopID,
		Name:         req.Name,
		Price:        req.Price,
		DurationMin:  req.DurationMin,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// load busca o serviço por id e aplica a checagem de dono:
// 404 quando não existe, 403 quando é de outra barbearia.
func (h *ServiceHandler) load(c *gin.Context) (*models.Service, bool) {
	shopID, role, _ := shopScope(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return nil, false
	}

	if err := authz.OwnsRecord(role, shopID, service.BarbershopID); err != nil {
		httperr.Forbidden(c, "ownership_mismatch", "Registro pertence a outra barbearia.")
		return nil, false
	}

	return &service, true
}

func (h *ServiceHandler) Update(c *gin.Context) {
	service, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	service, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.db.Delete(service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	service, ok := h.load(c)
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

	url, err := h.uploader.UploadWebp(c.Request.Context(), "services", converted)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar a imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
