package schema

type AirShoppingResponse struct {
	Offers    []Offer
	DataLists DataLists
}

type OrderViewResponse struct {
	MixOrder      MixOrder
	DataLists     DataLists
	TicketDocInfo []TicketDocInfo
}
