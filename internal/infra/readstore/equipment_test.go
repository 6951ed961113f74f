//go:build unit

package readstore_test

import (
	"context"
	"database/sql"
	"testing"

	"sport-rental/internal/infra"
	"sport-rental/internal/infra/readstore"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/queries"
	"sport-rental/tests/common/builder"
	readstoremock "sport-rental/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEquipmentReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewEquipmentReadStore(mockQueries, mockDB)

	skis := builder.NewEquipmentBuilder()
	board := builder.NewEquipmentBuilder().WithID(2).WithName("Snowboard").WithQuantity(0)
	mockQueries.EXPECT().ListEquipment(ctx, mockDB).Return([]sqlc.Oprema{skis.BuildInfra(), board.BuildInfra()}, nil)

	views, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*queries.EquipmentView{skis.BuildView(), board.BuildView()}, views)
}

func TestEquipmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.Oprema
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row mapped to view", row: builder.NewEquipmentBuilder().WithID(6).BuildInfra()},
		{name: "error: unknown id", queryErr: sql.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewEquipmentReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetEquipmentByID(ctx, mockDB, int32(6)).Return(tc.row, tc.queryErr)

			view, err := store.FindByID(ctx, 6)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, builder.NewEquipmentBuilder().WithID(6).BuildView(), view)
		})
	}
}
