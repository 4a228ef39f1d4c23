package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/middleware"
)

// shopScope lê a identidade resolvida pelo AuthMiddleware.
func shopScope(c *gin.Context) (shopID uint, role string, subject string) {
	if v, ok := c.Get(middleware.ContextShopID); ok {
		shopID, _ = v.(uint)
	}
	if v, ok := c.Get(middleware.ContextRole); ok {
		role, _ = v.(string)
	}
	if v, ok := c.Get(middleware.ContextSubject); ok {
		subject, _ = v.(string)
	}
	return
}

// isDuplicateKey reconhece a violação de índice único do Postgres
// (SQLSTATE 23505). Usado como rede de segurança quando dois creates
// concorrentes passam pela checagem prévia de unicidade.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// mapBookingErrors traduz os códigos de negócio do agendamento para HTTP.
func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Erro ao processar agendamento.")
		return
	}

	switch code {
	case "barbershop_not_found":
		httperr.NotFound(c, code, "Barbearia não encontrada.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Serviço inválido para esta barbearia.")
	case "barber_not_found":
		httperr.BadRequest(c, code, "Barbeiro inválido para esta barbearia.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "invalid_date_time":
		httperr.BadRequest(c, code, "Data e hora inválidas.")
	case "closed_this_day":
		httperr.BadRequest(c, code, "A barbearia não abre neste dia.")
	case "outside_business_hours":
		httperr.BadRequest(c, code, "Horário fora do expediente.")
	case "inside_break_window":
		httperr.BadRequest(c, code, "Horário dentro do intervalo de pausa.")
	case "ownership_mismatch":
		httperr.Forbidden(c, code, "Registro pertence a outra barbearia.")
	default:
		httperr.BadRequest(c, code, "Agendamento rejeitado.")
	}
}
