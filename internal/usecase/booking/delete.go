package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	"github.com/BruksfildServices01/barber-saas/internal/authz"
	domain "github.com/BruksfildServices01/barber-saas/internal/domain/booking"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	role string,
	tokenShopID uint,
	bookingID uint,
	actor string,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := authz.OwnsRecord(role, tokenShopID, bk.BarbershopID); err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: bk.BarbershopID,
		Actor:        actor,
		Action:       "booking_deleted",
		Entity:       "booking",
		EntityID:     &bk.ID,
	})

	return bk, nil
}
