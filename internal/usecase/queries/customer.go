package queries

import (
	"context"

	"sport-rental/internal/pkg/errs"
)

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerReadStore interface {
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{
		readStore: readStore,
	}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
