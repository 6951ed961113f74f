package repository

import (
	"context"

	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
	"sport-rental/internal/usecase/commands"
)

type EquipmentWriteQueries interface {
	CreateEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEquipmentParams) (int32, error)
	GetEquipmentByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Oprema, error)
	UpdateEquipmentPriceQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEquipmentPriceQuantityParams) (int64, error)
	DeleteEquipment(ctx context.Context, db sqlc.DBTX, id int32) (int64, error)
}

type EquipmentRepository struct {
	queries EquipmentWriteQueries
	db      sqlc.DBTX
}

func NewEquipmentRepository(queries EquipmentWriteQueries, db sqlc.DBTX) *EquipmentRepository {
	return &EquipmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) (int32, error) {
	id, err := r.queries.CreateEquipment(ctx, r.db, sqlc.CreateEquipmentParams{
		Naziv:      e.Name(),
		TipID:      e.TypeID(),
		Dostupnost: e.Available(),
		Cena:       e.Price(),
		Kolicina:   e.Quantity(),
		Lokacija:   e.Location(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create equipment", err)
	}
	return id, nil
}

// FindByID returns the stock snapshot the reservation rules need.
func (r *EquipmentRepository) FindByID(ctx context.Context, id int32) (*commands.EquipmentSnapshot, error) {
	row, err := r.queries.GetEquipmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return &commands.EquipmentSnapshot{
		ID:       row.ID,
		Name:     row.Naziv,
		Quantity: row.Kolicina,
	}, nil
}

func (r *EquipmentRepository) UpdatePriceQuantity(ctx context.Context, id int32, price float64, quantity int32) error {
	n, err := r.queries.UpdateEquipmentPriceQuantity(ctx, r.db, sqlc.UpdateEquipmentPriceQuantityParams{
		Cena:     price,
		Kolicina: quantity,
		ID:       id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int32) error {
	n, err := r.queries.DeleteEquipment(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}
