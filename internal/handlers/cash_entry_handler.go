package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	"github.com/BruksfildServices01/barber-saas/internal/authz"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/httpresp"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

// Lançamentos de caixa: receita avulsa fora dos agendamentos.
// Assim como booking, só criação e remoção, nunca edição.
type CashEntryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCashEntryHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *CashEntryHandler {
	return &CashEntryHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateCashEntryRequest struct {
	Description string  `json:"description" binding:"required"`
	Value       float64 `json:"value" binding:"required"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// --------- Handlers ---------

func (h *CashEntryHandler) List(c *gin.Context) {
	shopID, _, _ := shopScope(c)

	q := h.db.Where("barbershop_id = ?", shopID)

	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var entries []models.CashEntry
	if err := q.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cash_entries", "Erro ao listar lançamentos.")
		return
	}

	httpresp.List(c, entries)
}

func (h *CashEntryHandler) Create(c *gin.Context) {
	shopID, _, subject := shopScope(c)

	var req CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
		return
	}

	entry := models.CashEntry{
		BarbershopID: shopID,
		Description:  req.Description,
		Value:        req.Value,
		Date:         req.Date,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_cash_entry", "Erro ao criar lançamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		Actor:        subject,
		Action:       "cash_entry_created",
		Entity:       "cash_entry",
		EntityID:     &entry.ID,
	})

	c.JSON(http.StatusCreated, entry)
}

func (h *CashEntryHandler) Delete(c *gin.Context) {
	shopID, role, subject := shopScope(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var entry models.CashEntry
	if err := h.db.First(&entry, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "cash_entry_not_found", "Lançamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_cash_entry", "Erro ao buscar lançamento.")
		return
	}

	if err := authz.OwnsRecord(role, shopID, entry.BarbershopID); err != nil {
		httperr.Forbidden(c, "ownership_mismatch", "Registro pertence a outra barbearia.")
		return
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_cash_entry", "Erro ao remover lançamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: entry.BarbershopID,
		Actor:        subject,
		Action:       "cash_entry_deleted",
		Entity:       "cash_entry",
		EntityID:     &entry.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
