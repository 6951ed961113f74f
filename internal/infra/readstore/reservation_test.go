//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"sport-rental/internal/infra"
	"sport-rental/internal/infra/readstore"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/queries"
	"sport-rental/tests/common/builder"
	readstoremock "sport-rental/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped with ISO dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewReservationReadStore(mockQueries, mockDB)

		b := builder.NewReservationBuilder()
		mockQueries.EXPECT().ListReservationViews(ctx, mockDB).Return([]sqlc.ListReservationViewsRow{b.BuildInfraRow()}, nil)

		views, err := store.List(ctx)
		require.NoError(t, err)

		expected := []*queries.ReservationView{{
			ID:              1,
			CustomerID:      1,
			EquipmentID:     1,
			CustomerName:    "Marko Petrović",
			EquipmentName:   "Skije Atomic",
			ReservationDate: "2025-03-10",
			ReturnDate:      "2025-03-12",
			Quantity:        1,
			Status:          "aktivna",
		}}
		if diff := cmp.Diff(expected, views); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: no rows gives empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewReservationReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListReservationViews(ctx, mockDB).Return(nil, nil)

		views, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewReservationReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListReservationViews(ctx, mockDB).Return(nil, assert.AnError)

		views, err := store.List(ctx)
		require.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_Search(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		term         string
		expectedTerm string
	}{
		{name: "plain term passed through", term: "mark", expectedTerm: "mark"},
		{name: "percent is escaped", term: "100%", expectedTerm: `100\%`},
		{name: "underscore is escaped", term: "ski_x", expectedTerm: `ski\_x`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewReservationReadStore(mockQueries, mockDB)

			row := sqlc.SearchReservationViewsRow(builder.NewReservationBuilder().BuildInfraRow())
			mockQueries.EXPECT().SearchReservationViews(ctx, mockDB, tc.expectedTerm).Return([]sqlc.SearchReservationViewsRow{row}, nil)

			views, err := store.Search(ctx, tc.term)
			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, builder.NewReservationBuilder().BuildView(), views[0])
		})
	}
}

func TestReservationReadStore_CountByCustomer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewReservationReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().CountReservationsByCustomer(ctx, mockDB).Return([]sqlc.CountReservationsByCustomerRow{
		{KorisnikIme: "Ana", Broj: 1},
		{KorisnikIme: "Marko", Broj: 3},
	}, nil)

	counts, err := store.CountByCustomer(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*queries.CustomerReservationCount{
		{CustomerName: "Ana", Count: 1},
		{CustomerName: "Marko", Count: 3},
	}, counts)
}
