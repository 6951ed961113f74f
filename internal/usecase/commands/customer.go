package commands

import (
	"context"

	"sport-rental/internal/domain/customer"
	"sport-rental/internal/pkg/errs"
)

type CreateCustomerInput struct {
	Name           string
	Email          string
	Phone          string
	SkipValidation bool
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, in CreateCustomerInput) (int32, error)
	UpdatePhone(ctx context.Context, email, phone string) error
	DeleteCustomer(ctx context.Context, email string) error
}

type customerCommandsImpl struct {
	customerRepo CustomerRepository
}

func NewCustomerCommands(customerRepo CustomerRepository) CustomerCommands {
	return &customerCommandsImpl{
		customerRepo: customerRepo,
	}
}

func (c *customerCommandsImpl) CreateCustomer(ctx context.Context, in CreateCustomerInput) (int32, error) {
	var entity *customer.Customer
	if in.SkipValidation {
		entity = customer.NewCustomerUnchecked(in.Name, in.Email, in.Phone)
	} else {
		var err error
		entity, err = customer.NewCustomer(in.Name, in.Email, in.Phone)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	id, err := c.customerRepo.Create(ctx, entity)
	if err != nil {
		return 0, translateRepoErr(err, errs.ErrCustomerNotFound, errs.ErrInvalidReference)
	}
	return id, nil
}

// UpdatePhone stores the new phone as given; no format rule applies on update.
func (c *customerCommandsImpl) UpdatePhone(ctx context.Context, email, phone string) error {
	if err := c.customerRepo.UpdatePhone(ctx, email, phone); err != nil {
		return translateRepoErr(err, errs.ErrCustomerNotFound, errs.ErrInvalidReference)
	}
	return nil
}

func (c *customerCommandsImpl) DeleteCustomer(ctx context.Context, email string) error {
	if err := c.customerRepo.DeleteByEmail(ctx, email); err != nil {
		return translateRepoErr(err, errs.ErrCustomerNotFound, errs.ErrStillReferenced)
	}
	return nil
}
