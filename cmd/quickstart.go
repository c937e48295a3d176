package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel"
	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type bookingClient interface {
	AirShopping(ctx context.Context, itinerary []schema.Leg, paxes []schema.AnonymousPassenger) (schema.AirShoppingResponse, error)
	CreateOrder(ctx context.Context, selectedOffer schema.SelectedOffer, paxes []schema.Passenger) (schema.OrderViewResponse, error)
	RetrieveOrder(ctx context.Context, mixOrderID string) (schema.OrderViewResponse, error)
	ChangeOrder(ctx context.Context, mixOrderID string, amount schema.Amount) (schema.OrderViewResponse, error)
	CancelOrder(ctx context.Context, mixOrderID string) (bool, error)
}

var errNoOffers = errors.New("no offers found")

func main() {
	_ = godotenv.Load(".env")

	cfg := loadConfig(os.Getenv)
	if len(os.Args) > 1 {
		cfg.tripPath = os.Args[1]
	}

	os.Exit(quickstartApp(cfg, newLogger(cfg.logLevel)))
}

func quickstartApp(cfg config, log *zerolog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := loadTrip(cfg.tripPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.tripPath).Msg("failed to load trip")
		return 1
	}

	client, err := mixvel.New(cfg.credentials, log, cfg.options()...)
	if err != nil {
		log.Error().Err(err).Msg("failed to create mixvel client")
		return 1
	}
	defer client.Close()

	if err := book(ctx, client, t, log); err != nil {
		log.Error().Err(err).Msg("quickstart failed")
		return 1
	}

	return 0
}

// book shops the trip, orders the first offer and walks the order through
// retrieve, payment and cancellation.
func book(ctx context.Context, client bookingClient, t trip, log *zerolog.Logger) error {
	legs, err := t.legs()
	if err != nil {
		return err
	}

	paxes, err := t.passengers()
	if err != nil {
		return err
	}

	shopping, err := client.AirShopping(ctx, legs, t.anonymousPassengers())
	if err != nil {
		return err
	}
	if len(shopping.Offers) == 0 {
		return errNoOffers
	}

	offer := shopping.Offers[0]
	log.Info().
		Int("offers", len(shopping.Offers)).
		Str("offer_id", offer.OfferID).
		Str("owner", offer.OwnerCode).
		Str("expires_at", ndc.FormatScalar(offer.OfferExpirationTimeLimitDateTime)).
		Msg("offer selected")

	created, err := client.CreateOrder(ctx, selectOffer(offer, paxes), paxes)
	if err != nil {
		return err
	}

	mixOrderID := created.MixOrder.MixOrderID
	logOrder(log, "order created", created)

	retrieved, err := client.RetrieveOrder(ctx, mixOrderID)
	if err != nil {
		return err
	}
	logOrder(log, "order retrieved", retrieved)

	if t.Payment.Pay {
		changed, err := client.ChangeOrder(ctx, mixOrderID, t.paymentAmount(retrieved.MixOrder.TotalAmount))
		if err != nil {
			return err
		}
		logOrder(log, "order paid", changed)
	}

	if !t.Cancel {
		return nil
	}

	cancelled, err := client.CancelOrder(ctx, mixOrderID)
	if errors.Is(err, schema.ErrNoOrdersToCancel) {
		log.Info().Str("mix_order_id", mixOrderID).Msg("nothing left to cancel")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("mix_order_id", mixOrderID).Str("cancelled", ndc.FormatScalar(cancelled)).Msg("order cancelled")
	return nil
}

// selectOffer picks the first item of the offer for every passenger.
func selectOffer(offer schema.Offer, paxes []schema.Passenger) schema.SelectedOffer {
	selected := schema.SelectedOffer{OfferRefID: offer.OfferID}
	if len(offer.OfferItems) == 0 {
		return selected
	}

	paxRefIDs := make([]string, 0, len(paxes))
	for _, pax := range paxes {
		paxRefIDs = append(paxRefIDs, pax.PaxID)
	}

	selected.SelectedOfferItems = []schema.SelectedOfferItem{{
		OfferItemRefID: offer.OfferItems[0].OfferItemID,
		PaxRefIDs:      paxRefIDs,
	}}

	return selected
}

func logOrder(log *zerolog.Logger, message string, view schema.OrderViewResponse) {
	log.Info().
		Str("mix_order_id", view.MixOrder.MixOrderID).
		Int("orders", len(view.MixOrder.Orders)).
		Int64("total", view.MixOrder.TotalAmount.Amount).
		Str("currency", converting.Unwrap(view.MixOrder.TotalAmount.CurCode)).
		Bool("ticketed", view.TicketDocInfo != nil).
		Msg(message)
}
