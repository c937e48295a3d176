package parsing

import (
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
)

const operationStatusSuccess = "Success"

// ParseAirShoppingResponse reads a Mixvel_AirShoppingRS payload. Without
// offers the data lists are not read at all.
func ParseAirShoppingResponse(element *etree.Element) (schema.AirShoppingResponse, error) {
	offerElements := element.FindElements("./Response/Offer")
	if len(offerElements) == 0 {
		return schema.AirShoppingResponse{Offers: []schema.Offer{}, DataLists: newDataLists()}, nil
	}

	offers := make([]schema.Offer, 0, len(offerElements))
	for _, node := range offerElements {
		offer, err := parseOffer(node)
		if err != nil {
			return schema.AirShoppingResponse{}, err
		}
		offers = append(offers, offer)
	}

	dataListsElement, err := requiredChild(element, "./Response/DataLists")
	if err != nil {
		return schema.AirShoppingResponse{}, err
	}

	dataLists, err := parseDataLists(dataListsElement)
	if err != nil {
		return schema.AirShoppingResponse{}, err
	}

	return schema.AirShoppingResponse{Offers: offers, DataLists: dataLists}, nil
}

// ParseOrderViewResponse reads the order view returned by create, retrieve
// and change. TicketDocInfo is nil until tickets are issued.
func ParseOrderViewResponse(element *etree.Element) (schema.OrderViewResponse, error) {
	mixOrderElement, err := requiredChild(element, "./Response/MixOrder")
	if err != nil {
		return schema.OrderViewResponse{}, err
	}

	mixOrder, err := parseMixOrder(mixOrderElement)
	if err != nil {
		return schema.OrderViewResponse{}, err
	}

	dataListsElement, err := requiredChild(element, "./Response/DataLists")
	if err != nil {
		return schema.OrderViewResponse{}, err
	}

	dataLists, err := parseDataLists(dataListsElement)
	if err != nil {
		return schema.OrderViewResponse{}, err
	}

	response := schema.OrderViewResponse{MixOrder: mixOrder, DataLists: dataLists}

	for _, node := range element.FindElements("./Response/TicketDocInfo") {
		ticketDocInfo, err := parseTicketDocInfo(node)
		if err != nil {
			return schema.OrderViewResponse{}, err
		}
		response.TicketDocInfo = append(response.TicketDocInfo, ticketDocInfo)
	}

	return response, nil
}

// IsCancelSuccess is true when every OperationStatus is exactly Success,
// including when there is none. Status text is compared untrimmed.
func IsCancelSuccess(element *etree.Element) bool {
	for _, status := range element.FindElements(".//OperationStatus") {
		if status.Text() != operationStatusSuccess {
			return false
		}
	}
	return true
}

func ParseAuthToken(element *etree.Element) (string, error) {
	return requiredText(element, "./Token")
}
