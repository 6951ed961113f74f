//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	domreservation "sport-rental/internal/domain/reservation"
	reqdto "sport-rental/internal/handler/dto/request"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
	"sport-rental/internal/usecase/queries"
)

// ReservationBuilder defaults to a valid two-day reservation starting on Today.
type ReservationBuilder struct {
	ID              int32
	CustomerID      int32
	EquipmentID     int32
	CustomerName    string
	EquipmentName   string
	ReservationDate domreservation.Date
	ReturnDate      domreservation.Date
	Quantity        int32
	Status          domreservation.Status
}

// Today is the fixed "current day" used by unit tests.
var Today = domreservation.DateOf(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              1,
		CustomerID:      1,
		EquipmentID:     1,
		CustomerName:    "Marko Petrović",
		EquipmentName:   "Skije Atomic",
		ReservationDate: Today,
		ReturnDate:      Today.AddDays(2),
		Quantity:        1,
		Status:          domreservation.StatusActive,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDraft() domreservation.Draft {
	customerID := b.CustomerID
	equipmentID := b.EquipmentID
	reservationDate := b.ReservationDate
	returnDate := b.ReturnDate
	return domreservation.Draft{
		CustomerID:      &customerID,
		EquipmentID:     &equipmentID,
		ReservationDate: &reservationDate,
		ReturnDate:      &returnDate,
		Quantity:        strconv.Itoa(int(b.Quantity)),
		Status:          b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	return domreservation.NewReservation(b.CustomerID, b.EquipmentID, b.ReservationDate, b.ReturnDate, b.Quantity, b.Status)
}

func (b *ReservationBuilder) BuildInfraRow() sqlc.ListReservationViewsRow {
	return sqlc.ListReservationViewsRow{
		ID:               b.ID,
		KorisnikID:       b.CustomerID,
		OpremaID:         b.EquipmentID,
		KorisnikIme:      b.CustomerName,
		OpremaNaziv:      b.EquipmentName,
		DatumRezervacije: pgconv.DateToPgtype(b.ReservationDate.Time()),
		DatumVracanja:    pgconv.DateToPgtype(b.ReturnDate.Time()),
		Kolicina:         b.Quantity,
		Status:           b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	customerID := b.CustomerID
	equipmentID := b.EquipmentID
	reservationDate := b.ReservationDate.String()
	returnDate := b.ReturnDate.String()
	return reqdto.CreateReservationRequest{
		CustomerID:      &customerID,
		EquipmentID:     &equipmentID,
		ReservationDate: &reservationDate,
		ReturnDate:      &returnDate,
		Quantity:        reqdto.LooseString(strconv.Itoa(int(b.Quantity))),
		Status:          b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		EquipmentID:     b.EquipmentID,
		CustomerName:    b.CustomerName,
		EquipmentName:   b.EquipmentName,
		ReservationDate: b.ReservationDate.String(),
		ReturnDate:      b.ReturnDate.String(),
		Quantity:        b.Quantity,
		Status:          b.Status.String(),
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithCustomerID(id int32) *ReservationBuilder {
	b.CustomerID = id
	return b
}

func (b *ReservationBuilder) WithEquipmentID(id int32) *ReservationBuilder {
	b.EquipmentID = id
	return b
}

func (b *ReservationBuilder) WithDates(reservationDate, returnDate domreservation.Date) *ReservationBuilder {
	b.ReservationDate = reservationDate
	b.ReturnDate = returnDate
	return b
}

func (b *ReservationBuilder) WithQuantity(quantity int32) *ReservationBuilder {
	b.Quantity = quantity
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}
