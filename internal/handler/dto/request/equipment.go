package request

import (
	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/usecase/commands"
)

type CreateEquipmentRequest struct {
	Name      string  `json:"name" binding:"required"`
	TypeID    int32   `json:"type_id"`
	Available *bool   `json:"available,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Location  string  `json:"location"`
}

// ToInput treats a missing available flag as true, the column default.
func (r CreateEquipmentRequest) ToInput(opts CreateOptions) commands.CreateEquipmentInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return commands.CreateEquipmentInput{
		Attributes: equipment.Attributes{
			Name:      r.Name,
			TypeID:    r.TypeID,
			Available: available,
			Price:     r.Price,
			Quantity:  r.Quantity,
			Location:  r.Location,
		},
		SkipValidation: opts.SkipValidation,
	}
}

type UpdateEquipmentRequest struct {
	Price    *float64 `json:"price" binding:"required"`
	Quantity *int32   `json:"quantity" binding:"required"`
}
