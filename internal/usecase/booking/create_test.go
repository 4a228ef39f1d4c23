package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	"github.com/BruksfildServices01/barber-saas/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-saas/internal/httperr"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

// ======================================================
// Fake repository
// ======================================================

type fakeRepo struct {
	shops    map[uint]*models.Barbershop
	services map[uint]*models.Service
	barbers  map[uint]*models.Barber
	bookings map[uint]*models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:    map[uint]*models.Barbershop{},
		services: map[uint]*models.Service{},
		barbers:  map[uint]*models.Barber{},
		bookings: map[uint]*models.Booking{},
	}
}

var errNotFound = errors.New("record not found")

func (r *fakeRepo) GetShopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if s, ok := r.shops[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetService(_ context.Context, shopID, serviceID uint) (*models.Service, error) {
	if s, ok := r.services[serviceID]; ok && s.BarbershopID == shopID {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetBarber(_ context.Context, shopID, barberID uint) (*models.Barber, error) {
	if b, ok := r.barbers[barberID]; ok && b.BarbershopID == shopID {
		return b, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) CreateBooking(_ context.Context, bk *models.Booking) error {
	r.nextID++
	bk.ID = r.nextID
	r.bookings[bk.ID] = bk
	return nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	if bk, ok := r.bookings[id]; ok {
		return bk, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) DeleteBooking(_ context.Context, bk *models.Booking) error {
	delete(r.bookings, bk.ID)
	return nil
}

func (r *fakeRepo) ListBookingsForShop(_ context.Context, shopID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarbershopID == shopID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

// ======================================================
// Fixtures
// ======================================================

func seed(t *testing.T) *fakeRepo {
	t.Helper()

	repo := newFakeRepo()

	week, err := schedule.Serialize(schedule.Default())
	require.NoError(t, err)

	repo.shops[1] = &models.Barbershop{
		ID: 1, Name: "Barbearia do Zé", Slug: "ze",
		IsActive: true, OpeningHours: week,
	}
	repo.shops[2] = &models.Barbershop{
		ID: 2, Name: "Navalha de Ouro", Slug: "navalha",
		IsActive: false, OpeningHours: week,
	}

	repo.services[10] = &models.Service{ID: 10, BarbershopID: 1, Name: "Corte", Price: 50, DurationMin: 30}
	repo.services[20] = &models.Service{ID: 20, BarbershopID: 2, Name: "Barba", Price: 35, DurationMin: 20}

	repo.barbers[100] = &models.Barber{ID: 100, BarbershopID: 1, Name: "Zé"}
	repo.barbers[200] = &models.Barber{ID: 200, BarbershopID: 2, Name: "Carlos"}

	return repo
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BarbershopID:  1,
		BarberID:      100,
		ServiceID:     10,
		CustomerName:  "Cliente",
		CustomerPhone: "11999990000",
		DateTime:      "2024-01-01T09:00", // segunda, abertura
	}
}

// ======================================================
// Tests
// ======================================================

func TestCreateBookingHappyPath(t *testing.T) {
	repo := seed(t)
	uc := NewCreateBooking(repo, audit.NewNop())

	bk, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), bk.BarbershopID)
	assert.Equal(t, uint(100), bk.BarberID)
	assert.Equal(t, uint(10), bk.ServiceID)
	assert.Equal(t, "2024-01-01T09:00", bk.DateTime)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{
			"unknown shop",
			func(in *CreateBookingInput) { in.BarbershopID = 99 },
			"barbershop_not_found",
		},
		{
			"unparseable date",
			func(in *CreateBookingInput) { in.DateTime = "amanhã de tarde" },
			"invalid_date_time",
		},
		{
			"at closing time",
			func(in *CreateBookingInput) { in.DateTime = "2024-01-01T18:00" },
			"outside_business_hours",
		},
		{
			"sunday is inactive in the default week",
			func(in *CreateBookingInput) { in.DateTime = "2024-01-07T10:00" },
			"closed_this_day",
		},
		{
			"service from another shop",
			func(in *CreateBookingInput) { in.ServiceID = 20 },
			"service_not_found",
		},
		{
			"barber from another shop",
			func(in *CreateBookingInput) { in.BarberID = 200 },
			"barber_not_found",
		},
		{
			"unknown service",
			func(in *CreateBookingInput) { in.ServiceID = 999 },
			"service_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seed(t)
			uc := NewCreateBooking(repo, audit.NewNop())

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
			assert.Empty(t, repo.bookings, "rejeição não pode deixar rastro")
		})
	}
}

func TestCreateBookingSuspendedShopStillBookable(t *testing.T) {
	// suspensão bloqueia o login do dono, não o cliente
	repo := seed(t)
	uc := NewCreateBooking(repo, audit.NewNop())

	in := validInput()
	in.BarbershopID = 2
	in.ServiceID = 20
	in.BarberID = 200

	bk, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, uint(2), bk.BarbershopID)
}

func TestCreateBookingBreakWindow(t *testing.T) {
	repo := seed(t)

	week := schedule.Default()
	week["monday"] = schedule.DayRule{
		Open: "09:00", Close: "18:00",
		BreakStart: "12:00", BreakEnd: "13:00",
		Active: true,
	}
	raw, err := schedule.Serialize(week)
	require.NoError(t, err)
	repo.shops[1].OpeningHours = raw

	uc := NewCreateBooking(repo, audit.NewNop())

	in := validInput()
	in.DateTime = "2024-01-01T12:30"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "inside_break_window"))

	in.DateTime = "2024-01-01T11:59"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBookingMalformedHoursFallsBack(t *testing.T) {
	repo := seed(t)
	repo.shops[1].OpeningHours = "{corrompido"

	uc := NewCreateBooking(repo, audit.NewNop())

	// janela padrão 09:00-18:00 em qualquer dia
	in := validInput()
	in.DateTime = "2024-01-07T10:00" // domingo
	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	in.DateTime = "2024-01-07T19:00"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
}
