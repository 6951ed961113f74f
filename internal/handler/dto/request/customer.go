package request

import "sport-rental/internal/usecase/commands"

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CreateCustomerRequest) ToInput(opts CreateOptions) commands.CreateCustomerInput {
	return commands.CreateCustomerInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		SkipValidation: opts.SkipValidation,
	}
}

type UpdateCustomerPhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}
