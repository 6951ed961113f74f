package request

import (
	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/usecase/commands"
)

// CreateReservationRequest leaves presence and range checks to the reservation
// rules so that each violation is reported with its own message.
type CreateReservationRequest struct {
	CustomerID      *int32      `json:"customer_id"`
	EquipmentID     *int32      `json:"equipment_id"`
	ReservationDate *string     `json:"reservation_date" binding:"omitempty,isodate"`
	ReturnDate      *string     `json:"return_date" binding:"omitempty,isodate"`
	Quantity        LooseString `json:"quantity"`
	Status          string      `json:"status"`
}

func (r CreateReservationRequest) ToInput(opts CreateOptions) (commands.CreateReservationInput, error) {
	reservationDate, err := optionalDate(r.ReservationDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	returnDate, err := optionalDate(r.ReturnDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		Draft: reservation.Draft{
			CustomerID:      r.CustomerID,
			EquipmentID:     r.EquipmentID,
			ReservationDate: reservationDate,
			ReturnDate:      returnDate,
			Quantity:        r.Quantity.String(),
			Status:          r.Status,
		},
		SkipValidation: opts.SkipValidation,
	}, nil
}

type UpdateReturnDateRequest struct {
	ReturnDate string `json:"return_date" binding:"required,isodate"`
}

func (r UpdateReturnDateRequest) ToDate() (reservation.Date, error) {
	return reservation.ParseDate(r.ReturnDate)
}

func optionalDate(s *string) (*reservation.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
