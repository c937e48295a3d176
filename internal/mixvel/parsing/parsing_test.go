package parsing_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/parsing"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPayload(t *testing.T, path string) *etree.Element {
	t.Helper()

	body, err := os.ReadFile(path)
	require.Nil(t, err)

	root, err := parsing.ParseDocument(body)
	require.Nil(t, err)

	payload, err := parsing.AppData(root)
	require.Nil(t, err)

	return payload
}

func element(t *testing.T, xml string) *etree.Element {
	t.Helper()

	document := etree.NewDocument()
	require.Nil(t, document.ReadFromString(xml))

	return document.Root()
}

func TestStripNamespaces(t *testing.T) {
	t.Run("should remove prefixes and declarations", func(t *testing.T) {
		root := element(t, `<a:Root xmlns:a="urn:a" xmlns="urn:default" a:Kind="x"><b:Child xmlns:b="urn:b"><Leaf/></b:Child></a:Root>`)

		parsing.StripNamespaces(root)

		assert.Equal(t, "", root.Space)
		assert.Equal(t, "Root", root.Tag)
		require.Len(t, root.Attr, 1)
		assert.Equal(t, "", root.Attr[0].Space)
		assert.Equal(t, "Kind", root.Attr[0].Key)

		child := root.FindElement("./Child")
		require.NotNil(t, child)
		assert.Equal(t, "", child.Space)
		assert.Empty(t, child.Attr)
		assert.NotNil(t, root.FindElement("./Child/Leaf"))
	})

	t.Run("should reduce braced tags to the local name", func(t *testing.T) {
		tests := []struct {
			tag      string
			expected string
		}{
			{"{https://www.mixvel.com/API/XSD/Mixvel_AirShoppingRS/1_01}Offer", "Offer"},
			{"{}Offer", "Offer"},
			{"Offer", "Offer"},
		}

		for _, test := range tests {
			t.Run(test.tag, func(t *testing.T) {
				assert.Equal(t, test.expected, parsing.LocalName(test.tag))
			})
		}
	})

	t.Run("should report unreadable documents", func(t *testing.T) {
		_, err := parsing.ParseDocument([]byte("<Broken"))

		var parseError *schema.ParseError
		assert.True(t, errors.As(err, &parseError))
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected int64
		currency *string
	}{
		{"with kopecks", `<TotalAmount CurCode="RUB">6538.00</TotalAmount>`, 653800, strPtr("RUB")},
		{"without separator", `<TotalAmount CurCode="RUB">100</TotalAmount>`, 100, strPtr("RUB")},
		{"without currency", `<TotalAmount>12.50</TotalAmount>`, 1250, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			amount, err := parsing.ParseAmount(element(t, test.xml))

			assert.Nil(t, err)
			assert.Equal(t, schema.Amount{Amount: test.expected, CurCode: test.currency}, amount)
		})
	}

	t.Run("should fail on malformed amounts", func(t *testing.T) {
		for _, xml := range []string{`<Amount>abc</Amount>`, `<Amount></Amount>`} {
			_, err := parsing.ParseAmount(element(t, xml))

			var parseError *schema.ParseError
			assert.True(t, errors.As(err, &parseError), xml)
		}
	})
}

func TestParseAirShoppingResponse(t *testing.T) {
	t.Run("should parse offers and data lists", func(t *testing.T) {
		response, err := parsing.ParseAirShoppingResponse(readPayload(t, "./testdata/air_shopping.xml"))
		require.Nil(t, err)

		require.Len(t, response.Offers, 1)
		offer := response.Offers[0]
		assert.Equal(t, "OFFER-1", offer.OfferID)
		assert.Equal(t, "SU", offer.OwnerCode)
		assert.Equal(t, time.Date(2024, 5, 1, 10, 20, 0, 0, time.UTC), offer.OfferExpirationTimeLimitDateTime)
		assert.Equal(t, 1, *offer.TicketDocsCount)
		require.NotNil(t, offer.TotalPrice)
		assert.Equal(t, int64(653800), offer.TotalPrice.TotalAmount.Amount)
		assert.Empty(t, offer.TotalPrice.TaxSummary.Taxes)

		item, ok := offer.OfferItemByID("ITEM-1")
		require.True(t, ok)
		assert.Equal(t, schema.Amount{Amount: 653800, CurCode: strPtr("RUB")}, item.Price.TotalAmount)
		assert.Equal(t, []schema.Tax{
			{Amount: schema.Amount{Amount: 100000, CurCode: strPtr("RUB")}, TaxCode: "YQ"},
			{Amount: schema.Amount{Amount: 53800, CurCode: strPtr("RUB")}, TaxCode: "RI"},
		}, item.Price.TaxSummary.Taxes)
		assert.Equal(t, int64(153800), item.Price.TaxSummary.TotalTaxAmount.Amount)

		require.Len(t, item.Services, 1)
		service := item.Services[0]
		assert.Equal(t, "SRV-1", service.ServiceID)
		assert.Equal(t, []string{"PAX1"}, service.PaxRefIDs)
		assert.Equal(t, []string{"PJ-1"}, service.ServiceAssociations.PaxJourneyRefIDs)
		assert.Equal(t, []string{"SEG-1"}, service.ServiceAssociations.PaxSegmentRefIDs)
		assert.Equal(t, "VP-1", *service.ValidatingPartyRefID)

		require.Len(t, item.FareDetails, 1)
		assert.Equal(t, "PAX1", item.FareDetails[0].PaxRefID)
		require.Len(t, item.FareDetails[0].FareComponents, 1)
		component := item.FareDetails[0].FareComponents[0]
		assert.Equal(t, "YFLX", component.FareBasisCode)
		assert.Equal(t, "Y", component.RBD.RBDCode)
		assert.Equal(t, 9, *component.RBD.Availability)
		assert.Equal(t, "SEG-1", component.PaxSegmentRefID)
		assert.Equal(t, int64(500000), component.Price.TotalAmount.Amount)

		dataLists := response.DataLists
		require.Len(t, dataLists.OriginDestList, 1)
		assert.Equal(t, "SVO", dataLists.OriginDestList[0].OriginCode)
		assert.Equal(t, "LED", dataLists.OriginDestList[0].DestCode)
		assert.Equal(t, []string{"PJ-1"}, dataLists.OriginDestList[0].PaxJourneyRefIDs)

		segments := dataLists.JourneySegments("PJ-1")
		require.Len(t, segments, 1)
		assert.Equal(t, "SVO", segments[0].Dep.IATALocationCode)
		assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), segments[0].Dep.ScheduledDateTime)
		assert.Equal(t, "LED", segments[0].Arrival.IATALocationCode)
		assert.Equal(t, "SU", segments[0].MarketingCarrierInfo.CarrierDesigCode)
		assert.Equal(t, "0030", segments[0].MarketingCarrierInfo.MarketingCarrierFlightNumberText)
		assert.Equal(t, "PT1H30M", *segments[0].Duration)

		party, ok := dataLists.ValidatingPartyByID(*service.ValidatingPartyRefID)
		assert.True(t, ok)
		assert.Equal(t, "SU", party.ValidatingPartyCode)
	})

	t.Run("should skip data lists without offers", func(t *testing.T) {
		response, err := parsing.ParseAirShoppingResponse(readPayload(t, "./testdata/air_shopping_no_offers.xml"))

		assert.Nil(t, err)
		assert.Empty(t, response.Offers)
		assert.Equal(t, schema.DataLists{
			OriginDestList:      []schema.OriginDest{},
			PaxJourneyList:      []schema.PaxJourney{},
			PaxSegmentList:      []schema.PaxSegment{},
			ValidatingPartyList: []schema.ValidatingParty{},
		}, response.DataLists)
		assert.NotNil(t, response.DataLists.OriginDestList)
		assert.NotNil(t, response.DataLists.PaxSegmentList)
	})

	t.Run("should fail on a missing required element", func(t *testing.T) {
		payload := element(t, `<Mixvel_AirShoppingRS><Response><Offer><OfferID>OFFER-1</OfferID></Offer><DataLists/></Response></Mixvel_AirShoppingRS>`)

		_, err := parsing.ParseAirShoppingResponse(payload)

		var parseError *schema.ParseError
		require.True(t, errors.As(err, &parseError))
		assert.Equal(t, "./OwnerCode", parseError.Element)
		assert.ErrorIs(t, err, parsing.ErrMissingElement)
	})

	t.Run("should fail on a malformed timestamp", func(t *testing.T) {
		payload := element(t, `<Mixvel_AirShoppingRS><Response><Offer><OfferID>OFFER-1</OfferID><OwnerCode>SU</OwnerCode><OfferExpirationTimeLimitDateTime>tomorrow</OfferExpirationTimeLimitDateTime></Offer><DataLists/></Response></Mixvel_AirShoppingRS>`)

		_, err := parsing.ParseAirShoppingResponse(payload)

		var parseError *schema.ParseError
		require.True(t, errors.As(err, &parseError))
		assert.Equal(t, "./OfferExpirationTimeLimitDateTime", parseError.Element)
	})

	t.Run("should require data lists next to offers", func(t *testing.T) {
		payload := element(t, `<Mixvel_AirShoppingRS><Response><Offer><OfferID>OFFER-1</OfferID><OwnerCode>SU</OwnerCode><OfferExpirationTimeLimitDateTime>2024-05-01T10:20:00</OfferExpirationTimeLimitDateTime></Offer></Response></Mixvel_AirShoppingRS>`)

		_, err := parsing.ParseAirShoppingResponse(payload)

		assert.ErrorIs(t, err, parsing.ErrMissingElement)
	})
}

func TestParseOrderViewResponse(t *testing.T) {
	t.Run("should parse a ticketed order", func(t *testing.T) {
		response, err := parsing.ParseOrderViewResponse(readPayload(t, "./testdata/order_view.xml"))
		require.Nil(t, err)

		assert.Equal(t, "MIX-1", response.MixOrder.MixOrderID)
		assert.Equal(t, int64(653800), response.MixOrder.TotalAmount.Amount)

		require.Len(t, response.MixOrder.Orders, 1)
		order := response.MixOrder.Orders[0]
		assert.Equal(t, "ORDER-1", order.OrderID)
		assert.Equal(t, int64(653800), order.TotalPrice.TotalAmount.Amount)

		require.Len(t, order.BookingRefs, 2)
		assert.Equal(t, "ABC123", order.BookingRefs[0].BookingID)
		assert.Equal(t, "PNR", *order.BookingRefs[0].BookingRefTypeCode)
		require.NotNil(t, order.BookingRefs[0].BookingEntity)
		assert.Equal(t, "SU", *order.BookingRefs[0].BookingEntity.Carrier.AirlineDesigCode)
		assert.Nil(t, order.BookingRefs[0].BookingEntity.Carrier.MixvelAirlineID)
		assert.Nil(t, order.BookingRefs[1].BookingEntity)
		assert.Nil(t, order.BookingRefs[1].BookingRefTypeCode)

		require.Len(t, order.OrderItems, 1)
		assert.Equal(t, "ORDER-ITEM-1", order.OrderItems[0].OrderItemID)
		assert.Nil(t, order.OrderItems[0].FareDetails[0].FareComponents[0].RBD.Availability)

		require.Len(t, response.TicketDocInfo, 1)
		assert.Equal(t, "PAX1", response.TicketDocInfo[0].PaxRefID)
		require.Len(t, response.TicketDocInfo[0].Tickets, 1)
		ticket := response.TicketDocInfo[0].Tickets[0]
		assert.Equal(t, "5552100000001", ticket.TicketNumber)
		assert.Equal(t, []schema.Coupon{
			{CouponNumber: 1, FareBasisCode: strPtr("YFLX"), PaxSegmentRefIDs: []string{"SEG-1"}},
		}, ticket.Coupons)

		_, ok := response.DataLists.SegmentByID("SEG-1")
		assert.True(t, ok)
	})

	t.Run("should leave ticket info empty before ticketing", func(t *testing.T) {
		response, err := parsing.ParseOrderViewResponse(readPayload(t, "./testdata/order_view_not_ticketed.xml"))

		assert.Nil(t, err)
		assert.Nil(t, response.TicketDocInfo)
		assert.Empty(t, response.MixOrder.Orders)
	})

	t.Run("should require a mix order", func(t *testing.T) {
		_, err := parsing.ParseOrderViewResponse(readPayload(t, "./testdata/order_view_without_mix_order.xml"))

		var parseError *schema.ParseError
		require.True(t, errors.As(err, &parseError))
		assert.Equal(t, "./Response/MixOrder", parseError.Element)
	})
}

func TestIsCancelSuccess(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"all statuses successful", "./testdata/cancel_success.xml", true},
		{"one status failed", "./testdata/cancel_failure.xml", false},
		{"no statuses", "./testdata/cancel_no_status.xml", true},
		{"padded status", "./testdata/cancel_padded_status.xml", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, parsing.IsCancelSuccess(readPayload(t, test.path)))
		})
	}
}

func TestDetectFault(t *testing.T) {
	t.Run("should read the fault fields", func(t *testing.T) {
		body, _ := os.ReadFile("./testdata/error_no_orders_to_cancel.xml")
		root, err := parsing.ParseDocument(body)
		require.Nil(t, err)

		fault := parsing.DetectFault(root)

		require.NotNil(t, fault)
		assert.Equal(t, "MIX-106001", fault.Code)
		assert.Equal(t, "Business", fault.Type)
		assert.Equal(t, "Нет заказов для отмены", fault.Description)
		assert.ErrorIs(t, fault, schema.ErrNoOrdersToCancel)
	})

	t.Run("should default an empty code", func(t *testing.T) {
		body, _ := os.ReadFile("./testdata/error_without_code.xml")
		root, err := parsing.ParseDocument(body)
		require.Nil(t, err)

		fault := parsing.DetectFault(root)

		require.NotNil(t, fault)
		assert.Equal(t, "UNDEFINED", fault.Code)
		assert.Equal(t, "Validation", fault.Type)
		assert.Equal(t, "", fault.Description)
		assert.False(t, errors.Is(fault, schema.ErrNoOrdersToCancel))
	})

	t.Run("should find nothing in a successful response", func(t *testing.T) {
		body, _ := os.ReadFile("./testdata/cancel_success.xml")
		root, err := parsing.ParseDocument(body)
		require.Nil(t, err)

		assert.Nil(t, parsing.DetectFault(root))
	})
}

func TestParseAuthToken(t *testing.T) {
	t.Run("should read a namespaced token", func(t *testing.T) {
		token, err := parsing.ParseAuthToken(readPayload(t, "./testdata/login.xml"))

		assert.Nil(t, err)
		assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.token.signature", token)
	})

	t.Run("should fail without a token", func(t *testing.T) {
		_, err := parsing.ParseAuthToken(element(t, `<AuthResponse/>`))

		assert.ErrorIs(t, err, parsing.ErrMissingElement)
	})
}

func strPtr(value string) *string {
	return &value
}
