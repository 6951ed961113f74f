//go:build unit

package reservation_test

import (
	"errors"
	"testing"
	"time"

	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/pkg/clock"
	"sport-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stock = int32(5)

func TestAdmit(t *testing.T) {
	today := builder.Today

	t.Run("basic success case", func(t *testing.T) {
		draft := builder.NewReservationBuilder().WithQuantity(2).BuildDraft()

		actual, err := reservation.Admit(draft, stock, today)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int32(1), actual.CustomerID())
		assert.Equal(t, int32(1), actual.EquipmentID())
		assert.True(t, actual.ReservationDate().Equal(today))
		assert.True(t, actual.ReturnDate().Equal(today.AddDays(2)))
		assert.Equal(t, int32(2), actual.Quantity())
		assert.Equal(t, reservation.StatusActive, actual.Status())
	})

	testCases := []struct {
		name   string
		mutate func(*reservation.Draft)
		errIs  error
	}{
		{name: "missing customer", mutate: func(d *reservation.Draft) { d.CustomerID = nil }, errIs: reservation.ErrMissingReference},
		{name: "missing equipment", mutate: func(d *reservation.Draft) { d.EquipmentID = nil }, errIs: reservation.ErrMissingReference},
		{name: "missing reservation date", mutate: func(d *reservation.Draft) { d.ReservationDate = nil }, errIs: reservation.ErrMissingReference},
		{name: "missing return date", mutate: func(d *reservation.Draft) { d.ReturnDate = nil }, errIs: reservation.ErrMissingReference},
		{name: "blank quantity", mutate: func(d *reservation.Draft) { d.Quantity = "   " }, errIs: reservation.ErrBlankField},
		{name: "empty status", mutate: func(d *reservation.Draft) { d.Status = "" }, errIs: reservation.ErrBlankField},
		{name: "reservation yesterday", mutate: func(d *reservation.Draft) { setDates(d, today.AddDays(-1), today.AddDays(2)) }, errIs: reservation.ErrDateInPast},
		{name: "return on the reservation day", mutate: func(d *reservation.Draft) { setDates(d, today, today) }, errIs: reservation.ErrReturnNotAfterReservation},
		{name: "return before reservation", mutate: func(d *reservation.Draft) { setDates(d, today.AddDays(3), today.AddDays(1)) }, errIs: reservation.ErrReturnNotAfterReservation},
		{name: "non-numeric quantity", mutate: func(d *reservation.Draft) { d.Quantity = "dva" }, errIs: reservation.ErrInvalidQuantity},
		{name: "decimal quantity", mutate: func(d *reservation.Draft) { d.Quantity = "1.5" }, errIs: reservation.ErrInvalidQuantity},
		{name: "zero quantity", mutate: func(d *reservation.Draft) { d.Quantity = "0" }, errIs: reservation.ErrInvalidQuantity},
		{name: "negative quantity", mutate: func(d *reservation.Draft) { d.Quantity = "-3" }, errIs: reservation.ErrInvalidQuantity},
		{name: "quantity above stock", mutate: func(d *reservation.Draft) { d.Quantity = "6" }, errIs: reservation.ErrInsufficientStock},
		{name: "quantity equal to stock", mutate: func(d *reservation.Draft) { d.Quantity = "5" }},
		{name: "quantity with surrounding spaces", mutate: func(d *reservation.Draft) { d.Quantity = " 3 " }},
		{name: "unknown status", mutate: func(d *reservation.Draft) { d.Status = "pending" }, errIs: reservation.ErrInvalidStatus},
		{name: "status is case sensitive", mutate: func(d *reservation.Draft) { d.Status = "Aktivna" }, errIs: reservation.ErrInvalidStatus},
		{name: "canceled status", mutate: func(d *reservation.Draft) { d.Status = string(reservation.StatusCanceled) }},
		{name: "completed status", mutate: func(d *reservation.Draft) { d.Status = string(reservation.StatusCompleted) }},
		{name: "future reservation", mutate: func(d *reservation.Draft) { setDates(d, today.AddDays(30), today.AddDays(31)) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := builder.NewReservationBuilder().BuildDraft()
			tc.mutate(&draft)

			actual, err := reservation.Admit(draft, stock, today)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestAdmit_RuleOrder(t *testing.T) {
	today := builder.Today

	t.Run("missing reference wins over every other violation", func(t *testing.T) {
		d := reservation.Draft{Quantity: "", Status: "x"}
		_, err := reservation.Admit(d, 0, today)
		assert.ErrorIs(t, err, reservation.ErrMissingReference)
	})

	t.Run("blank field is reported before a past date", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithDates(today.AddDays(-5), today.AddDays(-6)).BuildDraft()
		d.Status = ""
		_, err := reservation.Admit(d, stock, today)
		assert.ErrorIs(t, err, reservation.ErrBlankField)
	})

	t.Run("past date is reported before the return date rule", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithDates(today.AddDays(-5), today.AddDays(-6)).BuildDraft()
		_, err := reservation.Admit(d, stock, today)
		assert.ErrorIs(t, err, reservation.ErrDateInPast)
	})

	t.Run("date rules run before quantity parsing", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithDates(today, today).BuildDraft()
		d.Quantity = "abc"
		_, err := reservation.Admit(d, stock, today)
		assert.ErrorIs(t, err, reservation.ErrReturnNotAfterReservation)
	})

	t.Run("stock is checked before status", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithQuantity(9).BuildDraft()
		d.Status = "unknown"
		_, err := reservation.Admit(d, stock, today)
		assert.ErrorIs(t, err, reservation.ErrInsufficientStock)
	})
}

func TestAdmit_InsufficientStockCarriesMaximum(t *testing.T) {
	d := builder.NewReservationBuilder().WithQuantity(7).BuildDraft()

	_, err := reservation.Admit(d, stock, builder.Today)

	var stockErr *reservation.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, int32(7), stockErr.Requested)
	assert.Equal(t, stock, stockErr.Available)
	assert.Contains(t, err.Error(), "Max: 5")
}

func TestValidator_TodayUsesLocation(t *testing.T) {
	belgrade, err := time.LoadLocation("Europe/Belgrade")
	require.NoError(t, err)

	// 23:30 UTC on 9 March is already 10 March in Belgrade
	clk := clock.NewMockClock(time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC))

	v := reservation.NewValidator(clk, belgrade)
	assert.Equal(t, "2025-03-10", v.Today().String())

	utc := reservation.NewValidator(clk, nil)
	assert.Equal(t, "2025-03-09", utc.Today().String())

	d := builder.NewReservationBuilder().WithDates(builder.Today, builder.Today.AddDays(1)).BuildDraft()
	_, err = v.Validate(d, stock)
	assert.NoError(t, err)

	_, err = utc.Validate(builder.NewReservationBuilder().WithDates(builder.Today.AddDays(-1), builder.Today).BuildDraft(), stock)
	assert.NoError(t, err, "the UTC validator still sees 9 March as today")
}

func TestFromDraft(t *testing.T) {
	t.Run("skips admission rules", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithDates(builder.Today.AddDays(-10), builder.Today.AddDays(-20)).WithQuantity(99).BuildDraft()
		d.Status = ""

		actual, err := reservation.FromDraft(d)
		require.NoError(t, err)
		assert.Equal(t, int32(99), actual.Quantity())
		assert.Equal(t, reservation.DefaultStatus, actual.Status())
	})

	t.Run("still needs references and a number", func(t *testing.T) {
		d := builder.NewReservationBuilder().BuildDraft()
		d.EquipmentID = nil
		_, err := reservation.FromDraft(d)
		assert.ErrorIs(t, err, reservation.ErrMissingReference)

		d = builder.NewReservationBuilder().BuildDraft()
		d.Quantity = "x"
		_, err = reservation.FromDraft(d)
		assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})
}

func TestParseDate(t *testing.T) {
	d, err := reservation.ParseDate("2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", d.String())

	for _, in := range []string{"12.03.2025", "2025-3-12", "2025-02-30", ""} {
		_, err := reservation.ParseDate(in)
		assert.ErrorIs(t, err, reservation.ErrInvalidDate, in)
	}
}

func setDates(d *reservation.Draft, from, to reservation.Date) {
	d.ReservationDate = &from
	d.ReturnDate = &to
}
