package equipment

import "sport-rental/internal/pkg/errs"

var (
	ErrNegativeQuantity = errs.New("quantity cannot be negative")
	ErrNonPositivePrice = errs.New("price must be greater than 0")
)

type Equipment struct {
	id        int32
	name      string
	typeID    int32
	available bool
	price     float64
	quantity  int32
	location  string
}

// Attributes carries the writable fields of a piece of equipment.
type Attributes struct {
	Name      string
	TypeID    int32
	Available bool
	Price     float64
	Quantity  int32
	Location  string
}

// NewEquipment checks quantity before price.
func NewEquipment(attrs Attributes) (*Equipment, error) {
	if attrs.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if attrs.Price <= 0 {
		return nil, ErrNonPositivePrice
	}
	return NewEquipmentUnchecked(attrs), nil
}

// NewEquipmentUnchecked trusts the caller. TypeID is never checked against a category table.
func NewEquipmentUnchecked(attrs Attributes) *Equipment {
	return &Equipment{
		name:      attrs.Name,
		typeID:    attrs.TypeID,
		available: attrs.Available,
		price:     attrs.Price,
		quantity:  attrs.Quantity,
		location:  attrs.Location,
	}
}

func ReconstructEquipment(id int32, attrs Attributes) *Equipment {
	e := NewEquipmentUnchecked(attrs)
	e.id = id
	return e
}

func (e *Equipment) ID() int32        { return e.id }
func (e *Equipment) Name() string     { return e.name }
func (e *Equipment) TypeID() int32    { return e.typeID }
func (e *Equipment) Available() bool  { return e.available }
func (e *Equipment) Price() float64   { return e.price }
func (e *Equipment) Quantity() int32  { return e.quantity }
func (e *Equipment) Location() string { return e.location }
