package mixvel

import (
	"context"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/mixvel/parsing"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

// AirShopping searches offers for the itinerary. An empty offer list is not
// an error.
func (c *Client) AirShopping(ctx context.Context, itinerary []schema.Leg, paxes []schema.AnonymousPassenger) (schema.AirShoppingResponse, error) {
	if err := schema.ValidateList("itinerary", itinerary); err != nil {
		return schema.AirShoppingResponse{}, err
	}
	if err := schema.ValidateList("paxes", paxes); err != nil {
		return schema.AirShoppingResponse{}, err
	}

	payload, err := c.execute(ctx, ndc.NewAirShoppingRQ(itinerary, paxes))
	if err != nil {
		return schema.AirShoppingResponse{}, err
	}

	return parsing.ParseAirShoppingResponse(payload)
}
