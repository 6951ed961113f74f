package response

import (
	"sport-rental/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              int32  `json:"id"`
	CustomerID      int32  `json:"customer_id"`
	EquipmentID     int32  `json:"equipment_id"`
	CustomerName    string `json:"customer_name"`
	EquipmentName   string `json:"equipment_name"`
	ReservationDate string `json:"reservation_date"`
	ReturnDate      string `json:"return_date"`
	Quantity        int32  `json:"quantity"`
	Status          string `json:"status"`
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

// ReservationCountResponse is one bar of the reservations-per-customer chart.
type ReservationCountResponse struct {
	CustomerName string `json:"customer_name"`
	Count        int32  `json:"count"`
}

func FromReservationCounts(counts []*queries.CustomerReservationCount) ([]*ReservationCountResponse, error) {
	res := make([]*ReservationCountResponse, 0, len(counts))
	if err := copier.Copy(&res, &counts); err != nil {
		return nil, err
	}
	return res, nil
}
