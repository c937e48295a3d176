package ndc

import (
	"encoding/xml"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

const (
	prefLevelRequired     = "Required"
	bestPricingOptionText = "Extended"
)

type AirShoppingRQ struct {
	XMLName   xml.Name           `xml:"shop:Mixvel_AirShoppingRQ"`
	XmlnsShop string             `xml:"xmlns:shop,attr"`
	Request   AirShoppingRequest `xml:"Request"`
}

type AirShoppingRequest struct {
	FlightRequest    FlightRequest    `xml:"FlightRequest"`
	Paxs             Paxs             `xml:"Paxs"`
	ShoppingCriteria ShoppingCriteria `xml:"ShoppingCriteria"`
}

type FlightRequest struct {
	OriginDestinationsCriteria OriginDestinationsCriteria `xml:"FlightRequestOriginDestinationsCriteria"`
}

type OriginDestinationsCriteria struct {
	OriginDestCriteria []OriginDestCriteria `xml:"OriginDestCriteria"`
}

type OriginDestCriteria struct {
	CabinType           CabinType           `xml:"CabinType"`
	DestArrivalCriteria DestArrivalCriteria `xml:"DestArrivalCriteria"`
	OriginDepCriteria   OriginDepCriteria   `xml:"OriginDepCriteria"`
}

type CabinType struct {
	CabinTypeCode string    `xml:"CabinTypeCode"`
	PrefLevel     PrefLevel `xml:"PrefLevel"`
}

type PrefLevel struct {
	PrefLevelCode string `xml:"PrefLevelCode"`
}

type DestArrivalCriteria struct {
	IATALocationCode string `xml:"IATA_LocationCode"`
}

type OriginDepCriteria struct {
	Date             Date   `xml:"Date"`
	IATALocationCode string `xml:"IATA_LocationCode"`
}

type Paxs struct {
	Pax []ShoppingPax `xml:"Pax"`
}

type ShoppingPax struct {
	PaxID string `xml:"PaxID"`
	PTC   string `xml:"PTC"`
}

type ShoppingCriteria struct {
	PricingMethodCriteria PricingMethodCriteria `xml:"PricingMethodCriteria"`
}

type PricingMethodCriteria struct {
	BestPricingOptionText string `xml:"BestPricingOptionText"`
	CarrierMixInd         bool   `xml:"CarrierMixInd"`
}

func NewAirShoppingRQ(itinerary []schema.Leg, paxes []schema.AnonymousPassenger) *AirShoppingRQ {
	criteria := make([]OriginDestCriteria, 0, len(itinerary))
	for _, leg := range itinerary {
		criteria = append(criteria, OriginDestCriteria{
			CabinType: CabinType{
				CabinTypeCode: leg.CabinOrDefault(),
				PrefLevel:     PrefLevel{PrefLevelCode: prefLevelRequired},
			},
			DestArrivalCriteria: DestArrivalCriteria{
				IATALocationCode: leg.Destination,
			},
			OriginDepCriteria: OriginDepCriteria{
				Date:             Date(leg.Departure),
				IATALocationCode: leg.Origin,
			},
		})
	}

	shoppingPaxes := make([]ShoppingPax, 0, len(paxes))
	for _, pax := range paxes {
		shoppingPaxes = append(shoppingPaxes, ShoppingPax{
			PaxID: pax.PaxID,
			PTC:   pax.PTC,
		})
	}

	return &AirShoppingRQ{
		XmlnsShop: "https://www.mixvel.com/API/XSD/Mixvel_AirShoppingRQ/1_01",
		Request: AirShoppingRequest{
			FlightRequest: FlightRequest{
				OriginDestinationsCriteria: OriginDestinationsCriteria{
					OriginDestCriteria: criteria,
				},
			},
			Paxs: Paxs{Pax: shoppingPaxes},
			ShoppingCriteria: ShoppingCriteria{
				PricingMethodCriteria: PricingMethodCriteria{
					BestPricingOptionText: bestPricingOptionText,
					CarrierMixInd:         true,
				},
			},
		},
	}
}

func (r *AirShoppingRQ) Operation() schema.OperationName { return schema.AirShopping }

func (r *AirShoppingRQ) payload() {}
