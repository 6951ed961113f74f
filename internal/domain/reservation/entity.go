package reservation

import (
	"fmt"

	"sport-rental/internal/pkg/errs"
)

var (
	ErrMissingReference          = errs.New("customer, equipment, reservation date and return date are required")
	ErrBlankField                = errs.New("quantity and status are required")
	ErrDateInPast                = errs.New("reservation date cannot be in the past")
	ErrReturnNotAfterReservation = errs.New("return date must be after the reservation date")
	ErrInvalidQuantity           = errs.New("quantity must be a positive whole number")
	ErrInsufficientStock         = errs.New("not enough equipment in stock")
	ErrInvalidStatus             = errs.New("status must be one of: aktivna, otkazana, završena")
	ErrInvalidDate               = errs.New("date must use the YYYY-MM-DD format")
)

// InsufficientStockError reports how many units could have been reserved.
type InsufficientStockError struct {
	Requested int32
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s. Max: %d", ErrInsufficientStock.Error(), e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type Reservation struct {
	id              int32
	customerID      int32
	equipmentID     int32
	reservationDate Date
	returnDate      Date
	quantity        int32
	status          Status
}

func NewReservation(customerID, equipmentID int32, reservationDate, returnDate Date, quantity int32, status Status) *Reservation {
	return &Reservation{
		customerID:      customerID,
		equipmentID:     equipmentID,
		reservationDate: reservationDate,
		returnDate:      returnDate,
		quantity:        quantity,
		status:          statusOrDefault(status),
	}
}

func ReconstructReservation(
	id, customerID, equipmentID int32,
	reservationDate, returnDate Date,
	quantity int32,
	status Status,
) *Reservation {
	return &Reservation{
		id:              id,
		customerID:      customerID,
		equipmentID:     equipmentID,
		reservationDate: reservationDate,
		returnDate:      returnDate,
		quantity:        quantity,
		status:          status,
	}
}

// Equal compares identities only.
func (r *Reservation) Equal(other *Reservation) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.id == other.id
}

func (r *Reservation) ID() int32             { return r.id }
func (r *Reservation) CustomerID() int32     { return r.customerID }
func (r *Reservation) EquipmentID() int32    { return r.equipmentID }
func (r *Reservation) ReservationDate() Date { return r.reservationDate }
func (r *Reservation) ReturnDate() Date      { return r.returnDate }
func (r *Reservation) Quantity() int32       { return r.quantity }
func (r *Reservation) Status() Status        { return r.status }
