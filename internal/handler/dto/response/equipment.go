package response

import (
	"sport-rental/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type EquipmentResponse struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	TypeID    int32   `json:"type_id"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Location  string  `json:"location"`
}

func FromEquipmentView(v *queries.EquipmentView) (*EquipmentResponse, error) {
	res := &EquipmentResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromEquipmentViews(views []*queries.EquipmentView) ([]*EquipmentResponse, error) {
	res := make([]*EquipmentResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
