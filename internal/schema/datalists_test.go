package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataListsLookups(t *testing.T) {
	originDestID := "OD-1"
	dataLists := DataLists{
		OriginDestList: []OriginDest{
			{OriginCode: "SVO", DestCode: "LED"},
			{OriginCode: "SVO", DestCode: "LED", OriginDestID: &originDestID, PaxJourneyRefIDs: []string{"PJ-1"}},
		},
		PaxJourneyList: []PaxJourney{
			{PaxJourneyID: "PJ-1", PaxSegmentRefIDs: []string{"SEG-2", "SEG-UNKNOWN", "SEG-1"}},
		},
		PaxSegmentList: []PaxSegment{
			{PaxSegmentID: "SEG-1"},
			{PaxSegmentID: "SEG-2"},
		},
		ValidatingPartyList: []ValidatingParty{
			{ValidatingPartyID: "VP-1", ValidatingPartyCode: "SU"},
		},
	}

	t.Run("should resolve ids", func(t *testing.T) {
		originDest, ok := dataLists.OriginDestByID("OD-1")
		assert.True(t, ok)
		assert.Equal(t, []string{"PJ-1"}, originDest.PaxJourneyRefIDs)

		journey, ok := dataLists.JourneyByID("PJ-1")
		assert.True(t, ok)
		assert.Len(t, journey.PaxSegmentRefIDs, 3)

		party, ok := dataLists.ValidatingPartyByID("VP-1")
		assert.True(t, ok)
		assert.Equal(t, "SU", party.ValidatingPartyCode)
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		_, ok := dataLists.SegmentByID("SEG-3")
		assert.False(t, ok)

		_, ok = dataLists.OriginDestByID("OD-2")
		assert.False(t, ok)

		assert.Nil(t, dataLists.JourneySegments("PJ-2"))
	})

	t.Run("should keep journey segment order", func(t *testing.T) {
		segments := dataLists.JourneySegments("PJ-1")

		assert.Equal(t, []PaxSegment{{PaxSegmentID: "SEG-2"}, {PaxSegmentID: "SEG-1"}}, segments)
	})
}

func TestOfferItemByID(t *testing.T) {
	offer := Offer{OfferItems: []OfferItem{{OfferItemID: "ITEM-1"}, {OfferItemID: "ITEM-2"}}}

	item, ok := offer.OfferItemByID("ITEM-2")
	assert.True(t, ok)
	assert.Equal(t, "ITEM-2", item.OfferItemID)

	_, ok = offer.OfferItemByID("ITEM-3")
	assert.False(t, ok)
}

func TestPassengerHasContact(t *testing.T) {
	assert.False(t, Passenger{}.HasContact())
	assert.True(t, Passenger{Detail: PassengerDetail{Email: "ivan@example.com"}}.HasContact())
	assert.True(t, Passenger{Detail: PassengerDetail{Phone: "+79990000000"}}.HasContact())
}
