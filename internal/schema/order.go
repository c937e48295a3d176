package schema

// MixOrder aggregates the airline orders created by a single booking.
type MixOrder struct {
	MixOrderID  string  `validate:"required"`
	Orders      []Order `validate:"dive"`
	TotalAmount Amount
}

type Order struct {
	OrderID     string      `validate:"required"`
	BookingRefs []Booking   `validate:"dive"`
	OrderItems  []OrderItem `validate:"dive"`
	TotalPrice  Price
}

type OrderItem struct {
	OrderItemID string       `validate:"required"`
	FareDetails []FareDetail `validate:"dive"`
	Price       Price
}

type Booking struct {
	BookingID          string `validate:"required"`
	BookingEntity      *BookingEntity
	BookingRefTypeCode *string
}

type BookingEntity struct {
	Carrier *Carrier
}

type Carrier struct {
	AirlineDesigCode *string
	MixvelAirlineID  *string
}

type TicketDocInfo struct {
	PaxRefID string   `validate:"required"`
	Tickets  []Ticket `validate:"dive"`
}

type Ticket struct {
	Coupons      []Coupon `validate:"dive"`
	TicketNumber string   `validate:"required"`
}

// Coupon is one flown-segment entitlement of an issued ticket.
type Coupon struct {
	CouponNumber     int
	FareBasisCode    *string
	PaxSegmentRefIDs []string
}
