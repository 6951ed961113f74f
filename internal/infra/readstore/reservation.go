package readstore

import (
	"context"
	"strings"

	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
	"sport-rental/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListReservationViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationViewsRow, error)
	SearchReservationViews(ctx context.Context, db sqlc.DBTX, term string) ([]sqlc.SearchReservationViewsRow, error)
	CountReservationsByCustomer(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountReservationsByCustomerRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationView(sqlc.SearchReservationViewsRow(row)))
	}
	return views, nil
}

// Search matches term as a literal substring; LIKE wildcards in term are escaped.
func (r *ReservationReadStore) Search(ctx context.Context, term string) ([]*queries.ReservationView, error) {
	rows, err := r.queries.SearchReservationViews(ctx, r.db, escapeLike(term))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationView(row))
	}
	return views, nil
}

func (r *ReservationReadStore) CountByCustomer(ctx context.Context) ([]*queries.CustomerReservationCount, error) {
	rows, err := r.queries.CountReservationsByCustomer(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations per customer", err)
	}

	counts := make([]*queries.CustomerReservationCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &queries.CustomerReservationCount{
			CustomerName: row.KorisnikIme,
			Count:        row.Broj,
		})
	}
	return counts, nil
}

func toReservationView(row sqlc.SearchReservationViewsRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		CustomerID:      row.KorisnikID,
		EquipmentID:     row.OpremaID,
		CustomerName:    row.KorisnikIme,
		EquipmentName:   row.OpremaNaziv,
		ReservationDate: pgconv.ISODateFromPgtype(row.DatumRezervacije),
		ReturnDate:      pgconv.ISODateFromPgtype(row.DatumVracanja),
		Quantity:        row.Kolicina,
		Status:          row.Status,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
