package queries

import (
	"context"

	"sport-rental/internal/infra"
	"sport-rental/internal/pkg/errs"
)

type EquipmentQueries interface {
	List(ctx context.Context) ([]*EquipmentView, error)
	GetByID(ctx context.Context, id int32) (*EquipmentView, error)
}

type EquipmentReadStore interface {
	List(ctx context.Context) ([]*EquipmentView, error)
	FindByID(ctx context.Context, id int32) (*EquipmentView, error)
}

type equipmentQueriesImpl struct {
	readStore EquipmentReadStore
}

func NewEquipmentQueries(readStore EquipmentReadStore) EquipmentQueries {
	return &equipmentQueriesImpl{
		readStore: readStore,
	}
}

func (q *equipmentQueriesImpl) List(ctx context.Context) ([]*EquipmentView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *equipmentQueriesImpl) GetByID(ctx context.Context, id int32) (*EquipmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEquipmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
