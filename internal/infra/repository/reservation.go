package repository

import (
	"context"

	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int32, error)
	UpdateReservationReturnDate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationReturnDateParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int32) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int32, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, reservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateReturnDate(ctx context.Context, id int32, returnDate reservation.Date) error {
	n, err := r.queries.UpdateReservationReturnDate(ctx, r.db, sqlc.UpdateReservationReturnDateParams{
		DatumVracanja: pgconv.DateToPgtype(returnDate.Time()),
		ID:            id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation return date", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int32) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func reservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		KorisnikID:       res.CustomerID(),
		OpremaID:         res.EquipmentID(),
		DatumRezervacije: pgconv.DateToPgtype(res.ReservationDate().Time()),
		DatumVracanja:    pgconv.DateToPgtype(res.ReturnDate().Time()),
		Kolicina:         res.Quantity(),
		Status:           res.Status().String(),
	}
}
