//go:build unit

package equipment_test

import (
	"testing"

	"sport-rental/internal/domain/equipment"
	"sport-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.EquipmentBuilder)
	errIs  error
}

func TestEquipment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewEquipmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Skije Atomic", actual.Name())
		assert.Equal(t, int32(2), actual.TypeID())
		assert.True(t, actual.Available())
		assert.Equal(t, 1500.0, actual.Price())
		assert.Equal(t, int32(5), actual.Quantity())
		assert.Equal(t, "Kopaonik", actual.Location())
	})

	t.Run("quantity and price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero quantity", mutate: func(b *builder.EquipmentBuilder) { b.WithQuantity(0) }},
			{name: "negative quantity", mutate: func(b *builder.EquipmentBuilder) { b.WithQuantity(-1) }, errIs: equipment.ErrNegativeQuantity},
			{name: "smallest positive price", mutate: func(b *builder.EquipmentBuilder) { b.WithPrice(0.01) }},
			{name: "zero price", mutate: func(b *builder.EquipmentBuilder) { b.WithPrice(0) }, errIs: equipment.ErrNonPositivePrice},
			{name: "negative price", mutate: func(b *builder.EquipmentBuilder) { b.WithPrice(-5) }, errIs: equipment.ErrNonPositivePrice},
			{
				name:   "quantity is checked before price",
				mutate: func(b *builder.EquipmentBuilder) { b.WithQuantity(-1).WithPrice(0) },
				errIs:  equipment.ErrNegativeQuantity,
			},
		})
	})

	t.Run("reconstruct keeps the id", func(t *testing.T) {
		actual := equipment.ReconstructEquipment(7, builder.NewEquipmentBuilder().Attributes())
		assert.Equal(t, int32(7), actual.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewEquipmentBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
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
