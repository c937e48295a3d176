package schema

import "time"

// Offer is a priced, time-limited proposal returned by air shopping.
type Offer struct {
	OfferID                          string      `validate:"required"`
	OfferItems                       []OfferItem `validate:"dive"`
	OwnerCode                        string      `validate:"required"`
	OfferExpirationTimeLimitDateTime time.Time   `validate:"required"`
	TicketDocsCount                  *int
	TotalPrice                       *Price
}

type OfferItem struct {
	OfferItemID string `validate:"required"`
	Price       Price
	Services    []Service    `validate:"dive"`
	FareDetails []FareDetail `validate:"dive"`
}

type Service struct {
	ServiceID            string `validate:"required"`
	PaxRefIDs            []string
	ServiceAssociations  ServiceOfferAssociations
	ValidatingPartyRefID *string
}

type ServiceOfferAssociations struct {
	PaxJourneyRefIDs []string
	PaxSegmentRefIDs []string
}

type FareDetail struct {
	FareComponents []FareComponent `validate:"dive"`
	PaxRefID       string          `validate:"required"`
}

type FareComponent struct {
	FareBasisCode   string `validate:"required"`
	RBD             RbdAvail
	Price           Price
	PaxSegmentRefID string `validate:"required"`
}

// RbdAvail is a reservation booking designator with its seat availability.
type RbdAvail struct {
	RBDCode      string `validate:"required"`
	Availability *int
}

// OfferItemByID returns the item of the offer with the given id.
func (o Offer) OfferItemByID(id string) (OfferItem, bool) {
	for _, item := range o.OfferItems {
		if item.OfferItemID == id {
			return item, true
		}
	}
	return OfferItem{}, false
}
