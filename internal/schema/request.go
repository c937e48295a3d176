package schema

import "time"

const (
	DefaultCabin    = "Economy"
	DefaultCurrency = "RUB"
)

// Leg is one origin-destination pair of the requested itinerary. An empty
// Cabin means DefaultCabin.
type Leg struct {
	Origin      string    `validate:"required"`
	Destination string    `validate:"required"`
	Departure   time.Time `validate:"required"`
	Cabin       string
}

func (l Leg) CabinOrDefault() string {
	if l.Cabin == "" {
		return DefaultCabin
	}
	return l.Cabin
}

// SelectedOffer references an offer and the items of it the customer chose.
type SelectedOffer struct {
	OfferRefID         string              `validate:"required"`
	SelectedOfferItems []SelectedOfferItem `validate:"min=1,dive"`
}

type SelectedOfferItem struct {
	OfferItemRefID string   `validate:"required"`
	PaxRefIDs      []string `validate:"min=1,dive,required"`
}
