package schema

import "time"

// DataLists holds the reference tables of a response. Entities elsewhere in
// the response point into these lists by id; order carries no meaning.
type DataLists struct {
	OriginDestList      []OriginDest
	PaxJourneyList      []PaxJourney
	PaxSegmentList      []PaxSegment
	ValidatingPartyList []ValidatingParty
}

type OriginDest struct {
	OriginCode       string `validate:"required"`
	DestCode         string `validate:"required"`
	OriginDestID     *string
	PaxJourneyRefIDs []string
}

type PaxJourney struct {
	PaxJourneyID     string `validate:"required"`
	PaxSegmentRefIDs []string
}

type PaxSegment struct {
	PaxSegmentID         string `validate:"required"`
	Dep                  TransportDepArrival
	Arrival              TransportDepArrival
	MarketingCarrierInfo DatedMarketingSegment
	Duration             *string
}

type TransportDepArrival struct {
	IATALocationCode  string    `validate:"required"`
	ScheduledDateTime time.Time `validate:"required"`
}

type DatedMarketingSegment struct {
	CarrierDesigCode                 string `validate:"required"`
	MarketingCarrierFlightNumberText string `validate:"required"`
}

type ValidatingParty struct {
	ValidatingPartyID   string `validate:"required"`
	ValidatingPartyCode string `validate:"required"`
}

func (d DataLists) OriginDestByID(id string) (OriginDest, bool) {
	for _, originDest := range d.OriginDestList {
		if originDest.OriginDestID != nil && *originDest.OriginDestID == id {
			return originDest, true
		}
	}
	return OriginDest{}, false
}

func (d DataLists) JourneyByID(id string) (PaxJourney, bool) {
	for _, journey := range d.PaxJourneyList {
		if journey.PaxJourneyID == id {
			return journey, true
		}
	}
	return PaxJourney{}, false
}

func (d DataLists) SegmentByID(id string) (PaxSegment, bool) {
	for _, segment := range d.PaxSegmentList {
		if segment.PaxSegmentID == id {
			return segment, true
		}
	}
	return PaxSegment{}, false
}

func (d DataLists) ValidatingPartyByID(id string) (ValidatingParty, bool) {
	for _, party := range d.ValidatingPartyList {
		if party.ValidatingPartyID == id {
			return party, true
		}
	}
	return ValidatingParty{}, false
}

// JourneySegments resolves the segments of a journey in the order the journey
// references them. Unknown segment ids are skipped.
func (d DataLists) JourneySegments(journeyID string) []PaxSegment {
	journey, ok := d.JourneyByID(journeyID)
	if !ok {
		return nil
	}

	segments := make([]PaxSegment, 0, len(journey.PaxSegmentRefIDs))
	for _, ref := range journey.PaxSegmentRefIDs {
		if segment, ok := d.SegmentByID(ref); ok {
			segments = append(segments, segment)
		}
	}

	return segments
}
