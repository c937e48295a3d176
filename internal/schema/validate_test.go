package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	departure := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should accept complete values", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
		}{
			{"leg", Leg{Origin: "SVO", Destination: "LED", Departure: departure}},
			{"anonymous passenger", AnonymousPassenger{PaxID: "PAX1", PTC: "ADT"}},
			{"selected offer", SelectedOffer{
				OfferRefID:         "OFFER-1",
				SelectedOfferItems: []SelectedOfferItem{{OfferItemRefID: "ITEM-1", PaxRefIDs: []string{"PAX1"}}},
			}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				assert.Nil(t, Validate(test.value))
			})
		}
	})

	t.Run("should name missing fields", func(t *testing.T) {
		err := Validate(Leg{Origin: "SVO"})

		var validationError *ValidationError
		require.True(t, errors.As(err, &validationError))
		assert.Equal(t, "Leg", validationError.Entity)
		assert.Equal(t, []string{"Leg.Destination (required)", "Leg.Departure (required)"}, validationError.Fields)
		assert.Equal(t, "invalid Leg: Leg.Destination (required), Leg.Departure (required)", err.Error())
	})

	t.Run("should validate nested passenger details", func(t *testing.T) {
		err := Validate(&Passenger{
			AnonymousPassenger: AnonymousPassenger{PaxID: "PAX1", PTC: "ADT"},
			Detail: PassengerDetail{
				Individual: Individual{GivenName: "Ivan", Surname: "Ivanov", Gender: "M", Birthdate: departure},
				Document:   IdentityDocument{DocID: "1", TypeCode: "PS", IssuingCountryCode: "RU"},
				Email:      "broken",
			},
		})

		var validationError *ValidationError
		require.True(t, errors.As(err, &validationError))
		assert.Equal(t, "Passenger", validationError.Entity)
		assert.Equal(t, []string{
			"Passenger.Detail.Document.ExpiryDate (required)",
			"Passenger.Detail.Email (email)",
		}, validationError.Fields)
	})

	t.Run("should require selected items to carry passengers", func(t *testing.T) {
		err := Validate(SelectedOffer{
			OfferRefID:         "OFFER-1",
			SelectedOfferItems: []SelectedOfferItem{{OfferItemRefID: "ITEM-1"}},
		})

		assert.NotNil(t, err)
	})
}

func TestValidateList(t *testing.T) {
	t.Run("should require at least one element", func(t *testing.T) {
		err := ValidateList[AnonymousPassenger]("paxes", nil)

		var validationError *ValidationError
		require.True(t, errors.As(err, &validationError))
		assert.Equal(t, "paxes", validationError.Entity)
		assert.Equal(t, []string{"paxes (min)"}, validationError.Fields)
	})

	t.Run("should validate every element", func(t *testing.T) {
		err := ValidateList("paxes", []AnonymousPassenger{{PaxID: "PAX1", PTC: "ADT"}, {PaxID: "PAX2"}})

		var validationError *ValidationError
		require.True(t, errors.As(err, &validationError))
		assert.Len(t, validationError.Fields, 1)
		assert.Contains(t, validationError.Fields[0], "PTC (required)")
	})

	t.Run("should accept valid lists", func(t *testing.T) {
		assert.Nil(t, ValidateList("paxes", []AnonymousPassenger{{PaxID: "PAX1", PTC: "ADT"}}))
	})
}

func TestLegCabin(t *testing.T) {
	assert.Equal(t, "Economy", Leg{}.CabinOrDefault())
	assert.Equal(t, "Business", Leg{Cabin: "Business"}.CabinOrDefault())
}
