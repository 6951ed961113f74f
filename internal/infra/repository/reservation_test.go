//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"sport-rental/internal/infra"
	"sport-rental/internal/infra/repository"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/pkg/pgconv"
	"sport-rental/tests/common/builder"
	repositorymock "sport-rental/tests/mock/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder().WithCustomerID(2).WithEquipmentID(3).WithQuantity(4)

	testCases := []struct {
		name       string
		returnID   int32
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation created", returnID: 21},
		{
			name:       "error: unknown customer or equipment",
			queryErr:   &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: status rejected by check constraint",
			queryErr:   &pgconn.PgError{Code: pgerrcode.CheckViolation},
			expectKind: infra.KindConstraintViolated,
		},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateReservation(ctx, mockDB, sqlc.CreateReservationParams{
				KorisnikID:       2,
				OpremaID:         3,
				DatumRezervacije: pgconv.DateToPgtype(b.ReservationDate.Time()),
				DatumVracanja:    pgconv.DateToPgtype(b.ReturnDate.Time()),
				Kolicina:         4,
				Status:           "aktivna",
			}).Return(tc.returnID, tc.queryErr)

			id, err := repo.Create(ctx, b.BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.returnID, id)
		})
	}
}

func TestReservationRepository_UpdateReturnDate(t *testing.T) {
	ctx := context.Background()
	newDate := builder.Today.AddDays(9)

	testCases := []struct {
		name       string
		rows       int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: return date moved", rows: 1},
		{name: "error: unknown reservation", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateReservationReturnDate(ctx, mockDB, sqlc.UpdateReservationReturnDateParams{
				DatumVracanja: pgconv.DateToPgtype(newDate.Time()),
				ID:            5,
			}).Return(tc.rows, tc.queryErr)

			err := repo.UpdateReturnDate(ctx, 5, newDate)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation deleted", rows: 1},
		{name: "error: unknown reservation", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteReservation(ctx, mockDB, int32(5)).Return(tc.rows, tc.queryErr)

			err := repo.Delete(ctx, 5)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
