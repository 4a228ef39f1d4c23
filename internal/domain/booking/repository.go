package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-saas/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Service / Barber (escopados pela barbearia) --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	ListBookingsForShop(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Booking, error)
}
