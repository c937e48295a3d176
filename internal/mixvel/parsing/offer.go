package parsing

import (
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
)

func parseOffer(element *etree.Element) (schema.Offer, error) {
	offerID, err := requiredText(element, "./OfferID")
	if err != nil {
		return schema.Offer{}, err
	}

	items := make([]schema.OfferItem, 0)
	for _, node := range element.FindElements("./OfferItem") {
		item, err := parseOfferItem(node)
		if err != nil {
			return schema.Offer{}, err
		}
		items = append(items, item)
	}

	ownerCode, err := requiredText(element, "./OwnerCode")
	if err != nil {
		return schema.Offer{}, err
	}

	expiration, err := requiredDateTime(element, "./OfferExpirationTimeLimitDateTime")
	if err != nil {
		return schema.Offer{}, err
	}

	ticketDocsCount, err := optionalInt(element, "./TicketDocsCount")
	if err != nil {
		return schema.Offer{}, err
	}

	offer := schema.Offer{
		OfferID:                          offerID,
		OfferItems:                       items,
		OwnerCode:                        ownerCode,
		OfferExpirationTimeLimitDateTime: expiration,
		TicketDocsCount:                  ticketDocsCount,
	}

	if node := element.FindElement("./TotalPrice"); node != nil {
		totalPrice, err := parsePrice(node)
		if err != nil {
			return schema.Offer{}, err
		}
		offer.TotalPrice = &totalPrice
	}

	return offer, nil
}

func parseOfferItem(element *etree.Element) (schema.OfferItem, error) {
	offerItemID, err := requiredText(element, "./OfferItemID")
	if err != nil {
		return schema.OfferItem{}, err
	}

	price, err := parseChildPrice(element, "./Price")
	if err != nil {
		return schema.OfferItem{}, err
	}

	services := make([]schema.Service, 0)
	for _, node := range element.FindElements("./Service") {
		service, err := parseService(node)
		if err != nil {
			return schema.OfferItem{}, err
		}
		services = append(services, service)
	}

	fareDetails, err := parseFareDetails(element)
	if err != nil {
		return schema.OfferItem{}, err
	}

	return schema.OfferItem{
		OfferItemID: offerItemID,
		Price:       price,
		Services:    services,
		FareDetails: fareDetails,
	}, nil
}

func parseService(element *etree.Element) (schema.Service, error) {
	serviceID, err := requiredText(element, "./ServiceID")
	if err != nil {
		return schema.Service{}, err
	}

	associations, err := requiredChild(element, "./ServiceAssociations")
	if err != nil {
		return schema.Service{}, err
	}

	return schema.Service{
		ServiceID: serviceID,
		PaxRefIDs: textList(element, "./PaxRefID"),
		ServiceAssociations: schema.ServiceOfferAssociations{
			PaxJourneyRefIDs: textList(associations, "./PaxJourneyRef/PaxJourneyRefID"),
			PaxSegmentRefIDs: textList(associations, "./PaxSegmentRef/PaxSegmentRefID"),
		},
		ValidatingPartyRefID: optionalText(element, "./ValidatingPartyRefID"),
	}, nil
}

// parseFareDetails reads the FareDetail children of an offer or order item.
func parseFareDetails(parent *etree.Element) ([]schema.FareDetail, error) {
	fareDetails := make([]schema.FareDetail, 0)
	for _, node := range parent.FindElements("./FareDetail") {
		fareDetail, err := parseFareDetail(node)
		if err != nil {
			return nil, err
		}
		fareDetails = append(fareDetails, fareDetail)
	}
	return fareDetails, nil
}

func parseFareDetail(element *etree.Element) (schema.FareDetail, error) {
	components := make([]schema.FareComponent, 0)
	for _, node := range element.FindElements("./FareComponent") {
		component, err := parseFareComponent(node)
		if err != nil {
			return schema.FareDetail{}, err
		}
		components = append(components, component)
	}

	paxRefID, err := requiredText(element, "./PaxRefID")
	if err != nil {
		return schema.FareDetail{}, err
	}

	return schema.FareDetail{FareComponents: components, PaxRefID: paxRefID}, nil
}

func parseFareComponent(element *etree.Element) (schema.FareComponent, error) {
	fareBasisCode, err := requiredText(element, "./FareBasisCode")
	if err != nil {
		return schema.FareComponent{}, err
	}

	rbdElement, err := requiredChild(element, "./RBD")
	if err != nil {
		return schema.FareComponent{}, err
	}
	rbd, err := parseRbdAvail(rbdElement)
	if err != nil {
		return schema.FareComponent{}, err
	}

	price, err := parseChildPrice(element, "./Price")
	if err != nil {
		return schema.FareComponent{}, err
	}

	paxSegmentRefID, err := requiredText(element, "./PaxSegmentRefID")
	if err != nil {
		return schema.FareComponent{}, err
	}

	return schema.FareComponent{
		FareBasisCode:   fareBasisCode,
		RBD:             rbd,
		Price:           price,
		PaxSegmentRefID: paxSegmentRefID,
	}, nil
}

func parseRbdAvail(element *etree.Element) (schema.RbdAvail, error) {
	code, err := requiredText(element, "./RBD_Code")
	if err != nil {
		return schema.RbdAvail{}, err
	}

	availability, err := optionalInt(element, "./Availability")
	if err != nil {
		return schema.RbdAvail{}, err
	}

	return schema.RbdAvail{RBDCode: code, Availability: availability}, nil
}
