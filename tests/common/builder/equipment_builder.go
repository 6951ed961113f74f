//go:build unit || e2e

package builder

import (
	domequipment "sport-rental/internal/domain/equipment"
	reqdto "sport-rental/internal/handler/dto/request"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/queries"
)

type EquipmentBuilder struct {
	ID        int32
	Name      string
	TypeID    int32
	Available bool
	Price     float64
	Quantity  int32
	Location  string
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:        1,
		Name:      "Skije Atomic",
		TypeID:    2,
		Available: true,
		Price:     1500,
		Quantity:  5,
		Location:  "Kopaonik",
	}
}

func (b *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EquipmentBuilder) Attributes() domequipment.Attributes {
	return domequipment.Attributes{
		Name:      b.Name,
		TypeID:    b.TypeID,
		Available: b.Available,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Location:  b.Location,
	}
}

func (b *EquipmentBuilder) BuildDomain() (*domequipment.Equipment, error) {
	return domequipment.NewEquipment(b.Attributes())
}

func (b *EquipmentBuilder) BuildInfra() sqlc.Oprema {
	return sqlc.Oprema{
		ID:         b.ID,
		Naziv:      b.Name,
		TipID:      b.TypeID,
		Dostupnost: b.Available,
		Cena:       b.Price,
		Kolicina:   b.Quantity,
		Lokacija:   b.Location,
	}
}

func (b *EquipmentBuilder) BuildCreateRequestDTO() reqdto.CreateEquipmentRequest {
	available := b.Available
	return reqdto.CreateEquipmentRequest{
		Name:      b.Name,
		TypeID:    b.TypeID,
		Available: &available,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Location:  b.Location,
	}
}

func (b *EquipmentBuilder) BuildView() *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:        b.ID,
		Name:      b.Name,
		TypeID:    b.TypeID,
		Available: b.Available,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Location:  b.Location,
	}
}

// Fluent builder methods
func (b *EquipmentBuilder) WithID(id int32) *EquipmentBuilder {
	b.ID = id
	return b
}

func (b *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	b.Name = name
	return b
}

func (b *EquipmentBuilder) WithPrice(price float64) *EquipmentBuilder {
	b.Price = price
	return b
}

func (b *EquipmentBuilder) WithQuantity(quantity int32) *EquipmentBuilder {
	b.Quantity = quantity
	return b
}
