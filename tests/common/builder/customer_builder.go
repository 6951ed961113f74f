//go:build unit || e2e

package builder

import (
	domcustomer "sport-rental/internal/domain/customer"
	reqdto "sport-rental/internal/handler/dto/request"
	sqlc "sport-rental/internal/infra/sqlc/generated"
	"sport-rental/internal/usecase/queries"
)

type CustomerBuilder struct {
	ID    int32
	Name  string
	Email string
	Phone string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    1,
		Name:  "Marko Petrović",
		Email: "marko@example.com",
		Phone: "0641234567",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	return domcustomer.NewCustomer(b.Name, b.Email, b.Phone)
}

func (b *CustomerBuilder) BuildInfra() sqlc.Korisnik {
	return sqlc.Korisnik{
		ID:      b.ID,
		Ime:     b.Name,
		Email:   b.Email,
		Telefon: b.Phone,
	}
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

// Fluent builder methods
func (b *CustomerBuilder) WithID(id int32) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.Phone = phone
	return b
}
