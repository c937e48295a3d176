package mixvel

import (
	"context"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/mixvel/parsing"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

func (c *Client) CreateOrder(ctx context.Context, selectedOffer schema.SelectedOffer, paxes []schema.Passenger) (schema.OrderViewResponse, error) {
	if err := schema.Validate(selectedOffer); err != nil {
		return schema.OrderViewResponse{}, err
	}
	if err := schema.ValidateList("paxes", paxes); err != nil {
		return schema.OrderViewResponse{}, err
	}

	return c.orderView(ctx, ndc.NewOrderCreateRQ(selectedOffer, paxes))
}

func (c *Client) RetrieveOrder(ctx context.Context, mixOrderID string) (schema.OrderViewResponse, error) {
	if err := validateMixOrderID(mixOrderID); err != nil {
		return schema.OrderViewResponse{}, err
	}

	return c.orderView(ctx, ndc.NewOrderRetrieveRQ(mixOrderID))
}

// ChangeOrder pays for the order, which issues its tickets.
func (c *Client) ChangeOrder(ctx context.Context, mixOrderID string, amount schema.Amount) (schema.OrderViewResponse, error) {
	if err := validateMixOrderID(mixOrderID); err != nil {
		return schema.OrderViewResponse{}, err
	}
	if err := schema.ValidateValue("amount", amount.Amount, "gt=0"); err != nil {
		return schema.OrderViewResponse{}, err
	}

	return c.orderView(ctx, ndc.NewOrderChangeRQ(mixOrderID, amount))
}

// CancelOrder reports whether every order of the mix order was cancelled.
// Cancelling an order with nothing left to cancel fails with an error
// matching schema.ErrNoOrdersToCancel.
func (c *Client) CancelOrder(ctx context.Context, mixOrderID string) (bool, error) {
	if err := validateMixOrderID(mixOrderID); err != nil {
		return false, err
	}

	payload, err := c.execute(ctx, ndc.NewOrderCancelRQ(mixOrderID))
	if err != nil {
		return false, err
	}

	return parsing.IsCancelSuccess(payload), nil
}

func (c *Client) orderView(ctx context.Context, request ndc.Message) (schema.OrderViewResponse, error) {
	payload, err := c.execute(ctx, request)
	if err != nil {
		return schema.OrderViewResponse{}, err
	}

	return parsing.ParseOrderViewResponse(payload)
}

func validateMixOrderID(mixOrderID string) error {
	return schema.ValidateValue("mixOrderID", mixOrderID, "required")
}
