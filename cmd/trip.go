package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
	"gopkg.in/yaml.v3"
)

// trip is the booking the quickstart walks through.
type trip struct {
	Itinerary  []tripLeg       `yaml:"itinerary"`
	Passengers []tripPassenger `yaml:"passengers"`
	Payment    tripPayment     `yaml:"payment"`
	Cancel     bool            `yaml:"cancel"`
}

type tripLeg struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Departure   string `yaml:"departure"`
	Cabin       string `yaml:"cabin"`
}

type tripPassenger struct {
	PaxID      string       `yaml:"pax_id"`
	PTC        string       `yaml:"ptc"`
	GivenName  string       `yaml:"given_name"`
	MiddleName string       `yaml:"middle_name"`
	Surname    string       `yaml:"surname"`
	Gender     string       `yaml:"gender"`
	Birthdate  string       `yaml:"birthdate"`
	Document   tripDocument `yaml:"document"`
	Phone      string       `yaml:"phone"`
	Email      string       `yaml:"email"`
}

type tripDocument struct {
	ID                 string `yaml:"id"`
	TypeCode           string `yaml:"type_code"`
	IssuingCountryCode string `yaml:"issuing_country_code"`
	ExpiryDate         string `yaml:"expiry_date"`
}

// tripPayment is skipped when Pay is false. An empty currency means the
// currency of the order total.
type tripPayment struct {
	Pay      bool   `yaml:"pay"`
	Currency string `yaml:"currency"`
}

func loadTrip(path string) (trip, error) {
	file, err := os.Open(path)
	if err != nil {
		return trip{}, err
	}
	defer file.Close()

	return decodeTrip(file)
}

func decodeTrip(reader io.Reader) (trip, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var t trip
	if err := decoder.Decode(&t); err != nil {
		return trip{}, &schema.ValidationError{Entity: "trip", Err: err}
	}

	return t, nil
}

func (t trip) legs() ([]schema.Leg, error) {
	legs := make([]schema.Leg, 0, len(t.Itinerary))
	for i, leg := range t.Itinerary {
		departure, err := parseDate(fmt.Sprintf("itinerary[%d].departure", i), leg.Departure)
		if err != nil {
			return nil, err
		}

		legs = append(legs, schema.Leg{
			Origin:      leg.Origin,
			Destination: leg.Destination,
			Departure:   departure,
			Cabin:       leg.Cabin,
		})
	}

	return legs, nil
}

func (t trip) anonymousPassengers() []schema.AnonymousPassenger {
	paxes := make([]schema.AnonymousPassenger, 0, len(t.Passengers))
	for _, passenger := range t.Passengers {
		paxes = append(paxes, schema.AnonymousPassenger{PaxID: passenger.PaxID, PTC: passenger.PTC})
	}
	return paxes
}

func (t trip) passengers() ([]schema.Passenger, error) {
	paxes := make([]schema.Passenger, 0, len(t.Passengers))
	for i, passenger := range t.Passengers {
		birthdate, err := parseDate(fmt.Sprintf("passengers[%d].birthdate", i), passenger.Birthdate)
		if err != nil {
			return nil, err
		}

		expiryDate, err := parseDate(fmt.Sprintf("passengers[%d].document.expiry_date", i), passenger.Document.ExpiryDate)
		if err != nil {
			return nil, err
		}

		paxes = append(paxes, schema.Passenger{
			AnonymousPassenger: schema.AnonymousPassenger{PaxID: passenger.PaxID, PTC: passenger.PTC},
			Detail: schema.PassengerDetail{
				Individual: schema.Individual{
					GivenName:  passenger.GivenName,
					MiddleName: passenger.MiddleName,
					Surname:    passenger.Surname,
					Gender:     passenger.Gender,
					Birthdate:  birthdate,
				},
				Document: schema.IdentityDocument{
					DocID:              passenger.Document.ID,
					TypeCode:           passenger.Document.TypeCode,
					IssuingCountryCode: passenger.Document.IssuingCountryCode,
					ExpiryDate:         expiryDate,
				},
				Phone: passenger.Phone,
				Email: passenger.Email,
			},
		})
	}

	return paxes, nil
}

// paymentAmount is the order total, in the trip currency when one is set.
func (t trip) paymentAmount(total schema.Amount) schema.Amount {
	if currency := converting.NilIfEmpty(t.Payment.Currency); currency != nil {
		total.CurCode = currency
	}
	return total
}

func parseDate(field string, value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &schema.ValidationError{Entity: "trip", Fields: []string{field + " (date)"}, Err: err}
	}
	return parsed, nil
}
