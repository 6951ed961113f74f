package repository

import (
	"context"

	"sport-rental/internal/domain/customer"
	"sport-rental/internal/infra"
	sqlc "sport-rental/internal/infra/sqlc/generated"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (int32, error)
	UpdateCustomerPhoneByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerPhoneByEmailParams) (int64, error)
	DeleteCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (int32, error) {
	id, err := r.queries.CreateCustomer(ctx, r.db, sqlc.CreateCustomerParams{
		Ime:     c.Name(),
		Email:   c.Email(),
		Telefon: c.Phone(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) UpdatePhone(ctx context.Context, email, phone string) error {
	n, err := r.queries.UpdateCustomerPhoneByEmail(ctx, r.db, sqlc.UpdateCustomerPhoneByEmailParams{
		Telefon: phone,
		Email:   email,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update customer phone", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) DeleteByEmail(ctx context.Context, email string) error {
	n, err := r.queries.DeleteCustomerByEmail(ctx, r.db, email)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
