package readstore

import (
	"context"

	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/queries"
)

type CustomerReadQueries interface {
	ListCustomers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Korisnik, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}

	views := make([]*queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CustomerView{
			ID:    row.ID,
			Name:  row.Ime,
			Email: row.Email,
			Phone: row.Telefon,
		})
	}
	return views, nil
}
