package response

import (
	"sport-rental/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func FromCustomerViews(views []*queries.CustomerView) ([]*CustomerResponse, error) {
	res := make([]*CustomerResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
