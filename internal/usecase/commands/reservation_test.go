//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/infra"
	"sport-rental/internal/pkg/clock"
	"sport-rental/internal/pkg/errs"
	"sport-rental/internal/usecase/commands"
	"sport-rental/tests/common/builder"
	commandsmock "sport-rental/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationFixture struct {
	reservations *commandsmock.MockReservationRepository
	equipment    *commandsmock.MockEquipmentRepository
	cmds         commands.ReservationCommands
}

func newReservationFixture(t *testing.T) reservationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	reservations := commandsmock.NewMockReservationRepository(ctrl)
	equipmentRepo := commandsmock.NewMockEquipmentRepository(ctrl)
	validator := reservation.NewValidator(clock.NewMockClock(builder.Today.Time().Add(10*time.Hour)), time.UTC)
	return reservationFixture{
		reservations: reservations,
		equipment:    equipmentRepo,
		cmds:         commands.NewReservationCommands(reservations, equipmentRepo, validator),
	}
}

func TestReservationCommands_CreateReservation(t *testing.T) {
	ctx := context.Background()
	snapshot := &commands.EquipmentSnapshot{ID: 1, Name: "Skije Atomic", Quantity: 5}

	t.Run("success: admitted reservation is stored", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).Return(snapshot, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) (int32, error) {
				assert.Equal(t, int32(3), r.Quantity())
				assert.Equal(t, reservation.StatusActive, r.Status())
				return 12, nil
			})

		id, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{
			Draft: builder.NewReservationBuilder().WithQuantity(3).BuildDraft(),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(12), id)
	})

	t.Run("error: more than stock reports the maximum", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).Return(snapshot, nil)

		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{
			Draft: builder.NewReservationBuilder().WithQuantity(7).BuildDraft(),
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))

		var stockErr *reservation.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, int32(5), stockErr.Available)
		assert.Contains(t, err.Error(), "Max: 5")
	})

	t.Run("error: missing reference skips the stock lookup", func(t *testing.T) {
		f := newReservationFixture(t)

		draft := builder.NewReservationBuilder().BuildDraft()
		draft.EquipmentID = nil
		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{Draft: draft})

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, reservation.ErrMissingReference)
	})

	t.Run("error: unknown equipment is an invalid reference", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).
			Return(nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound))

		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{
			Draft: builder.NewReservationBuilder().BuildDraft(),
		})
		assert.True(t, errs.Is(err, errs.ErrInvalidReference))
	})

	t.Run("error: unknown equipment is reported before blank fields", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).
			Return(nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound))

		draft := builder.NewReservationBuilder().BuildDraft()
		draft.Status = "  "
		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{Draft: draft})

		assert.True(t, errs.Is(err, errs.ErrInvalidReference))
		assert.NotErrorIs(t, err, reservation.ErrBlankField)
	})

	t.Run("error: stock lookup failure", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).
			Return(nil, infra.WrapRepoErr("failed", errors.New("down")))

		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{
			Draft: builder.NewReservationBuilder().BuildDraft(),
		})
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("error: unknown customer rejected by the store", func(t *testing.T) {
		f := newReservationFixture(t)
		f.equipment.EXPECT().FindByID(ctx, int32(1)).Return(snapshot, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			Return(int32(0), infra.WrapRepoErr("failed", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{
			Draft: builder.NewReservationBuilder().WithCustomerID(99).BuildDraft(),
		})
		assert.True(t, errs.Is(err, errs.ErrInvalidReference))
	})

	t.Run("success: skip validation bypasses rules and stock", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) (int32, error) {
				assert.Equal(t, int32(50), r.Quantity())
				return 13, nil
			})

		draft := builder.NewReservationBuilder().
			WithDates(builder.Today.AddDays(-3), builder.Today.AddDays(-4)).
			WithQuantity(50).
			BuildDraft()
		id, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{Draft: draft, SkipValidation: true})
		require.NoError(t, err)
		assert.Equal(t, int32(13), id)
	})

	t.Run("error: skip validation still needs a numeric quantity", func(t *testing.T) {
		f := newReservationFixture(t)

		draft := builder.NewReservationBuilder().BuildDraft()
		draft.Quantity = "mnogo"
		_, err := f.cmds.CreateReservation(ctx, commands.CreateReservationInput{Draft: draft, SkipValidation: true})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})
}

func TestReservationCommands_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)

	t.Run("return date update is not re-validated", func(t *testing.T) {
		f := newReservationFixture(t)
		past := builder.Today.AddDays(-30)
		f.reservations.EXPECT().UpdateReturnDate(ctx, int32(2), past).Return(nil)

		assert.NoError(t, f.cmds.UpdateReturnDate(ctx, 2, past))
	})

	t.Run("return date update of unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reservations.EXPECT().UpdateReturnDate(ctx, int32(2), gomock.Any()).Return(notFound)

		err := f.cmds.UpdateReturnDate(ctx, 2, builder.Today)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reservations.EXPECT().Delete(ctx, int32(2)).Return(nil)

		assert.NoError(t, f.cmds.DeleteReservation(ctx, 2))
	})

	t.Run("delete unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reservations.EXPECT().Delete(ctx, int32(2)).Return(notFound)

		err := f.cmds.DeleteReservation(ctx, 2)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}
