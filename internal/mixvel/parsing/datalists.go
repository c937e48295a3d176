package parsing

import (
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
)

// newDataLists returns DataLists with empty, non-nil lists.
func newDataLists() schema.DataLists {
	return schema.DataLists{
		OriginDestList:      make([]schema.OriginDest, 0),
		PaxJourneyList:      make([]schema.PaxJourney, 0),
		PaxSegmentList:      make([]schema.PaxSegment, 0),
		ValidatingPartyList: make([]schema.ValidatingParty, 0),
	}
}

func parseDataLists(element *etree.Element) (schema.DataLists, error) {
	dataLists := newDataLists()

	for _, node := range element.FindElements("./OriginDestList/OriginDest") {
		originDest, err := parseOriginDest(node)
		if err != nil {
			return schema.DataLists{}, err
		}
		dataLists.OriginDestList = append(dataLists.OriginDestList, originDest)
	}

	for _, node := range element.FindElements("./PaxJourneyList/PaxJourney") {
		journeyID, err := requiredText(node, "./PaxJourneyID")
		if err != nil {
			return schema.DataLists{}, err
		}
		dataLists.PaxJourneyList = append(dataLists.PaxJourneyList, schema.PaxJourney{
			PaxJourneyID:     journeyID,
			PaxSegmentRefIDs: textList(node, "./PaxSegmentRefID"),
		})
	}

	for _, node := range element.FindElements("./PaxSegmentList/PaxSegment") {
		segment, err := parsePaxSegment(node)
		if err != nil {
			return schema.DataLists{}, err
		}
		dataLists.PaxSegmentList = append(dataLists.PaxSegmentList, segment)
	}

	for _, node := range element.FindElements("./ValidatingPartyList/ValidatingParty") {
		party, err := parseValidatingParty(node)
		if err != nil {
			return schema.DataLists{}, err
		}
		dataLists.ValidatingPartyList = append(dataLists.ValidatingPartyList, party)
	}

	return dataLists, nil
}

func parseOriginDest(element *etree.Element) (schema.OriginDest, error) {
	originCode, err := requiredText(element, "./OriginCode")
	if err != nil {
		return schema.OriginDest{}, err
	}

	destCode, err := requiredText(element, "./DestCode")
	if err != nil {
		return schema.OriginDest{}, err
	}

	return schema.OriginDest{
		OriginCode:       originCode,
		DestCode:         destCode,
		OriginDestID:     optionalText(element, "./OriginDestID"),
		PaxJourneyRefIDs: textList(element, "./PaxJourneyRefID"),
	}, nil
}

func parsePaxSegment(element *etree.Element) (schema.PaxSegment, error) {
	segmentID, err := requiredText(element, "./PaxSegmentID")
	if err != nil {
		return schema.PaxSegment{}, err
	}

	dep, err := parseTransportDepArrival(element, "./Dep")
	if err != nil {
		return schema.PaxSegment{}, err
	}

	arrival, err := parseTransportDepArrival(element, "./Arrival")
	if err != nil {
		return schema.PaxSegment{}, err
	}

	carrierInfo, err := requiredChild(element, "./MarketingCarrierInfo")
	if err != nil {
		return schema.PaxSegment{}, err
	}
	carrierCode, err := requiredText(carrierInfo, "./CarrierDesigCode")
	if err != nil {
		return schema.PaxSegment{}, err
	}
	flightNumber, err := requiredText(carrierInfo, "./MarketingCarrierFlightNumberText")
	if err != nil {
		return schema.PaxSegment{}, err
	}

	return schema.PaxSegment{
		PaxSegmentID: segmentID,
		Dep:          dep,
		Arrival:      arrival,
		MarketingCarrierInfo: schema.DatedMarketingSegment{
			CarrierDesigCode:                 carrierCode,
			MarketingCarrierFlightNumberText: flightNumber,
		},
		Duration: optionalText(element, "./Duration"),
	}, nil
}

func parseTransportDepArrival(parent *etree.Element, path string) (schema.TransportDepArrival, error) {
	element, err := requiredChild(parent, path)
	if err != nil {
		return schema.TransportDepArrival{}, err
	}

	locationCode, err := requiredText(element, "./IATA_LocationCode")
	if err != nil {
		return schema.TransportDepArrival{}, err
	}

	scheduled, err := requiredDateTime(element, "./ScheduledDateTime")
	if err != nil {
		return schema.TransportDepArrival{}, err
	}

	return schema.TransportDepArrival{
		IATALocationCode:  locationCode,
		ScheduledDateTime: scheduled,
	}, nil
}

func parseValidatingParty(element *etree.Element) (schema.ValidatingParty, error) {
	partyID, err := requiredText(element, "./ValidatingPartyID")
	if err != nil {
		return schema.ValidatingParty{}, err
	}

	partyCode, err := requiredText(element, "./ValidatingPartyCode")
	if err != nil {
		return schema.ValidatingParty{}, err
	}

	return schema.ValidatingParty{ValidatingPartyID: partyID, ValidatingPartyCode: partyCode}, nil
}
