package parsing

import (
	"strconv"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
)

func parseMixOrder(element *etree.Element) (schema.MixOrder, error) {
	mixOrderID, err := requiredText(element, "./MixOrderID")
	if err != nil {
		return schema.MixOrder{}, err
	}

	orders := make([]schema.Order, 0)
	for _, node := range element.FindElements("./Order") {
		order, err := parseOrder(node)
		if err != nil {
			return schema.MixOrder{}, err
		}
		orders = append(orders, order)
	}

	totalAmount, err := parseChildAmount(element, "./TotalAmount")
	if err != nil {
		return schema.MixOrder{}, err
	}

	return schema.MixOrder{MixOrderID: mixOrderID, Orders: orders, TotalAmount: totalAmount}, nil
}

func parseOrder(element *etree.Element) (schema.Order, error) {
	orderID, err := requiredText(element, "./OrderID")
	if err != nil {
		return schema.Order{}, err
	}

	items := make([]schema.OrderItem, 0)
	for _, node := range element.FindElements("./OrderItem") {
		item, err := parseOrderItem(node)
		if err != nil {
			return schema.Order{}, err
		}
		items = append(items, item)
	}

	bookings := make([]schema.Booking, 0)
	for _, node := range element.FindElements("./BookingRef") {
		booking, err := parseBooking(node)
		if err != nil {
			return schema.Order{}, err
		}
		bookings = append(bookings, booking)
	}

	totalPrice, err := parseChildPrice(element, "./TotalPrice")
	if err != nil {
		return schema.Order{}, err
	}

	return schema.Order{
		OrderID:     orderID,
		BookingRefs: bookings,
		OrderItems:  items,
		TotalPrice:  totalPrice,
	}, nil
}

func parseOrderItem(element *etree.Element) (schema.OrderItem, error) {
	itemID, err := requiredText(element, "./OrderItemID")
	if err != nil {
		return schema.OrderItem{}, err
	}

	fareDetails, err := parseFareDetails(element)
	if err != nil {
		return schema.OrderItem{}, err
	}

	price, err := parseChildPrice(element, "./Price")
	if err != nil {
		return schema.OrderItem{}, err
	}

	return schema.OrderItem{OrderItemID: itemID, FareDetails: fareDetails, Price: price}, nil
}

func parseBooking(element *etree.Element) (schema.Booking, error) {
	bookingID, err := requiredText(element, "./BookingID")
	if err != nil {
		return schema.Booking{}, err
	}

	booking := schema.Booking{
		BookingID:          bookingID,
		BookingRefTypeCode: optionalText(element, "./BookingRefTypeCode"),
	}

	if entity := element.FindElement("./BookingEntity"); entity != nil {
		booking.BookingEntity = &schema.BookingEntity{}
		if carrier := entity.FindElement("./Carrier"); carrier != nil {
			booking.BookingEntity.Carrier = &schema.Carrier{
				AirlineDesigCode: optionalText(carrier, "./AirlineDesigCode"),
				MixvelAirlineID:  optionalText(carrier, "./MixvelAirlineID"),
			}
		}
	}

	return booking, nil
}

func parseTicketDocInfo(element *etree.Element) (schema.TicketDocInfo, error) {
	paxRefID, err := requiredText(element, "./PaxRefID")
	if err != nil {
		return schema.TicketDocInfo{}, err
	}

	tickets := make([]schema.Ticket, 0)
	for _, node := range element.FindElements("./Ticket") {
		ticket, err := parseTicket(node)
		if err != nil {
			return schema.TicketDocInfo{}, err
		}
		tickets = append(tickets, ticket)
	}

	return schema.TicketDocInfo{PaxRefID: paxRefID, Tickets: tickets}, nil
}

func parseTicket(element *etree.Element) (schema.Ticket, error) {
	coupons := make([]schema.Coupon, 0)
	for _, node := range element.FindElements("./Coupon") {
		coupon, err := parseCoupon(node)
		if err != nil {
			return schema.Ticket{}, err
		}
		coupons = append(coupons, coupon)
	}

	ticketNumber, err := requiredText(element, "./TicketNumber")
	if err != nil {
		return schema.Ticket{}, err
	}

	return schema.Ticket{Coupons: coupons, TicketNumber: ticketNumber}, nil
}

// parseCoupon accepts coupon numbers written as "1" or "1.0".
func parseCoupon(element *etree.Element) (schema.Coupon, error) {
	value, err := requiredText(element, "./CouponNumber")
	if err != nil {
		return schema.Coupon{}, err
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return schema.Coupon{}, parseError(element, "./CouponNumber", err)
	}

	return schema.Coupon{
		CouponNumber:     int(number),
		FareBasisCode:    optionalText(element, "./FareBasisCode"),
		PaxSegmentRefIDs: textList(element, "./SoldAirlineInfo/PaxSegmentRefID"),
	}, nil
}
