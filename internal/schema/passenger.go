package schema

import "time"

// AnonymousPassenger is all air shopping needs to know about a traveller.
type AnonymousPassenger struct {
	PaxID string `validate:"required"`
	PTC   string `validate:"required"`
}

// Passenger is an AnonymousPassenger with the identity and contact detail
// required to create an order.
type Passenger struct {
	AnonymousPassenger
	Detail PassengerDetail
}

type PassengerDetail struct {
	Individual Individual
	Document   IdentityDocument
	Phone      string
	Email      string `validate:"omitempty,email"`
}

type Individual struct {
	GivenName  string `validate:"required"`
	MiddleName string
	Surname    string    `validate:"required"`
	Gender     string    `validate:"required"`
	Birthdate  time.Time `validate:"required"`
}

type IdentityDocument struct {
	DocID              string    `validate:"required"`
	TypeCode           string    `validate:"required"`
	IssuingCountryCode string    `validate:"required"`
	ExpiryDate         time.Time `validate:"required"`
}

// HasContact reports whether the passenger carries an email or a phone.
func (p Passenger) HasContact() bool {
	return p.Detail.Email != "" || p.Detail.Phone != ""
}
