package customer

import (
	"regexp"
	"unicode/utf8"

	"sport-rental/internal/pkg/errs"
)

var (
	ErrInvalidEmail  = errs.New("invalid email format")
	ErrPhoneTooShort = errs.New("phone number must have at least 9 characters")
)

const MinPhoneLength = 9

// local@domain, no TLD requirement
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

type Customer struct {
	id    int32
	name  string
	email string
	phone string
}

// NewCustomer checks the email first, then the phone.
func NewCustomer(name, email, phone string) (*Customer, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	return NewCustomerUnchecked(name, email, phone), nil
}

func NewCustomerUnchecked(name, email, phone string) *Customer {
	return &Customer{
		name:  name,
		email: email,
		phone: phone,
	}
}

func ReconstructCustomer(id int32, name, email, phone string) *Customer {
	return &Customer{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
	}
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePhone(phone string) error {
	if utf8.RuneCountInString(phone) < MinPhoneLength {
		return ErrPhoneTooShort
	}
	return nil
}

func (c *Customer) ID() int32     { return c.id }
func (c *Customer) Name() string  { return c.name }
func (c *Customer) Email() string { return c.email }
func (c *Customer) Phone() string { return c.phone }
