package reservation

import (
	"strconv"
	"strings"
	"time"

	"sport-rental/internal/pkg/clock"
)

// Draft is a reservation as entered by a client, before any rule has run.
// Nil pointers mean the field was not supplied.
type Draft struct {
	CustomerID      *int32
	EquipmentID     *int32
	ReservationDate *Date
	ReturnDate      *Date
	Quantity        string
	Status          string
}

type Validator struct {
	clock    clock.Clock
	location *time.Location
}

// NewValidator judges "today" in location; nil means UTC.
func NewValidator(clk clock.Clock, location *time.Location) *Validator {
	return &Validator{clock: clk, location: location}
}

func (v *Validator) Today() Date {
	return DateOf(clock.Midnight(v.clock, v.location))
}

func (v *Validator) Validate(d Draft, stockOnHand int32) (*Reservation, error) {
	return Admit(d, stockOnHand, v.Today())
}

// Admit runs the admission rules in order and stops at the first violation.
func Admit(d Draft, stockOnHand int32, today Date) (*Reservation, error) {
	if d.CustomerID == nil || d.EquipmentID == nil || d.ReservationDate == nil || d.ReturnDate == nil {
		return nil, ErrMissingReference
	}

	qtyText := strings.TrimSpace(d.Quantity)
	statusText := strings.TrimSpace(d.Status)
	if qtyText == "" || statusText == "" {
		return nil, ErrBlankField
	}

	if d.ReservationDate.Before(today) {
		return nil, ErrDateInPast
	}

	if !d.ReturnDate.After(*d.ReservationDate) {
		return nil, ErrReturnNotAfterReservation
	}

	qty, err := parseQuantity(qtyText)
	if err != nil || qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	if qty > stockOnHand {
		return nil, &InsufficientStockError{Requested: qty, Available: stockOnHand}
	}

	status := Status(statusText)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return NewReservation(*d.CustomerID, *d.EquipmentID, *d.ReservationDate, *d.ReturnDate, qty, status), nil
}

// FromDraft builds a reservation without the admission rules. The store still needs
// both references, both dates and a numeric quantity; an empty status becomes the default.
func FromDraft(d Draft) (*Reservation, error) {
	if d.CustomerID == nil || d.EquipmentID == nil || d.ReservationDate == nil || d.ReturnDate == nil {
		return nil, ErrMissingReference
	}
	qty, err := parseQuantity(strings.TrimSpace(d.Quantity))
	if err != nil {
		return nil, ErrInvalidQuantity
	}
	status := Status(strings.TrimSpace(d.Status))
	return NewReservation(*d.CustomerID, *d.EquipmentID, *d.ReservationDate, *d.ReturnDate, qty, status), nil
}

func parseQuantity(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
