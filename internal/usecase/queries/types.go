package queries

// CustomerView is a customer row as listed to clients.
type CustomerView struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type EquipmentView struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	TypeID    int32   `json:"type_id"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Location  string  `json:"location"`
}

// ReservationView joins a reservation with the customer and equipment names.
// Dates are YYYY-MM-DD strings.
type ReservationView struct {
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

type CustomerReservationCount struct {
	CustomerName string `json:"customer_name"`
	Count        int32  `json:"count"`
}
