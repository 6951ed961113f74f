package queries

import (
	"context"
	"strings"

	"sport-rental/internal/pkg/errs"
)

type ReservationQueries interface {
	// List returns every reservation view, or only those whose customer or
	// equipment name contains search (case-insensitive) when search is not blank.
	List(ctx context.Context, search string) ([]*ReservationView, error)
	CountByCustomer(ctx context.Context) ([]*CustomerReservationCount, error)
}

type ReservationReadStore interface {
	List(ctx context.Context) ([]*ReservationView, error)
	Search(ctx context.Context, term string) ([]*ReservationView, error)
	CountByCustomer(ctx context.Context) ([]*CustomerReservationCount, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
	}
}

func (q *reservationQueriesImpl) List(ctx context.Context, search string) ([]*ReservationView, error) {
	var (
		views []*ReservationView
		err   error
	)
	if term := strings.TrimSpace(search); term != "" {
		views, err = q.readStore.Search(ctx, term)
	} else {
		views, err = q.readStore.List(ctx)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) CountByCustomer(ctx context.Context) ([]*CustomerReservationCount, error) {
	counts, err := q.readStore.CountByCustomer(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return counts, nil
}
