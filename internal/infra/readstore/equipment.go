package readstore

import (
	"context"

	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
	"sport-rental/internal/usecase/queries"
)

type EquipmentReadQueries interface {
	ListEquipment(ctx context.Context, db sqlc.DBTX) ([]sqlc.Oprema, error)
	GetEquipmentByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Oprema, error)
}

type EquipmentReadStore struct {
	queries EquipmentReadQueries
	db      sqlc.DBTX
}

func NewEquipmentReadStore(queries EquipmentReadQueries, db sqlc.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentReadStore) List(ctx context.Context) ([]*queries.EquipmentView, error) {
	rows, err := r.queries.ListEquipment(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}

	views := make([]*queries.EquipmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toEquipmentView(row))
	}
	return views, nil
}

func (r *EquipmentReadStore) FindByID(ctx context.Context, id int32) (*queries.EquipmentView, error) {
	row, err := r.queries.GetEquipmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return toEquipmentView(row), nil
}

func toEquipmentView(row sqlc.Oprema) *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:        row.ID,
		Name:      row.Naziv,
		TypeID:    row.TipID,
		Available: row.Dostupnost,
		Price:     row.Cena,
		Quantity:  row.Kolicina,
		Location:  row.Lokacija,
	}
}
