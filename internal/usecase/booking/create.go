package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	domain "github.com/BruksfildServices01/barber-saas/internal/domain/booking"
	"github.com/BruksfildServices01/barber-saas/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	CustomerName  string
	CustomerPhone string

	DateTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	// is_active NÃO é checado aqui: suspensão bloqueia o login do
	// dono, nunca o agendamento do cliente.
	shop, err := uc.repo.GetShopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora local
	// --------------------------------------------------
	at, err := schedule.ParseDateTime(in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_time")
	}

	// --------------------------------------------------
	// 3️⃣ Horário de funcionamento
	// --------------------------------------------------
	if err := schedule.ValidateSlot(shop.OpeningHours, at); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Serviço e barbeiro da mesma barbearia
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 5️⃣ Criação
	// --------------------------------------------------
	bk := &models.Booking{
		BarbershopID:  shop.ID,
		ServiceID:     service.ID,
		BarberID:      barber.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		DateTime:      at.Format("2006-01-02T15:04"),
	}

	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Actor:        in.CustomerPhone,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &bk.ID,
	})

	return bk, nil
}
