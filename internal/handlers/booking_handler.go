package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-saas/internal/domain/booking"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-saas/internal/usecase/booking"
)

type BookingHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	deleteUC *ucBooking.DeleteBooking
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	BarbershopID  uint   `json:"barbershop_id" binding:"required"`
	BarberID      uint   `json:"barber_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	DateTime      string `json:"date_time" binding:"required"` // 2024-01-01T09:00
}

// --------- Handlers ---------

// Create é a rota pública de agendamento do cliente final.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	bk, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarbershopID:  req.BarbershopID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DateTime:      req.DateTime,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, bk)
}

// List devolve os agendamentos da barbearia autenticada.
func (h *BookingHandler) List(c *gin.Context) {
	shopID, _, _ := shopScope(c)

	bks, err := h.repo.ListBookingsForShop(c.Request.Context(), shopID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bks)
}

// Delete remove um agendamento. 404 se não existe, 403 se for de outra
// barbearia. Agendamento nunca é editado, só criado e removido.
func (h *BookingHandler) Delete(c *gin.Context) {
	shopID, role, subject := shopScope(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if _, err := h.deleteUC.Execute(
		c.Request.Context(),
		role,
		shopID,
		uint(id),
		subject,
	); err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
