package commands

import (
	"context"

	"sport-rental/internal/domain/customer"
	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/domain/reservation"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type EquipmentSnapshot struct {
	ID       int32
	Name     string
	Quantity int32
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) (int32, error)
	UpdatePhone(ctx context.Context, email, phone string) error
	DeleteByEmail(ctx context.Context, email string) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *equipment.Equipment) (int32, error)
	FindByID(ctx context.Context, id int32) (*EquipmentSnapshot, error)
	UpdatePriceQuantity(ctx context.Context, id int32, price float64, quantity int32) error
	Delete(ctx context.Context, id int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int32, error)
	UpdateReturnDate(ctx context.Context, id int32, returnDate reservation.Date) error
	Delete(ctx context.Context, id int32) error
}
