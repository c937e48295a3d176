package ndc

import (
	"encoding/xml"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
)

type MixOrderRef struct {
	MixOrderID string `xml:"MixOrderID"`
}

type OrderRetrieveRQ struct {
	XMLName xml.Name             `xml:"o:Mixvel_OrderRetrieveRQ"`
	XmlnsO  string               `xml:"xmlns:o,attr"`
	Request OrderRetrieveRequest `xml:"Request"`
}

type OrderRetrieveRequest struct {
	OrderFilterCriteria OrderFilterCriteria `xml:"OrderFilterCriteria"`
}

type OrderFilterCriteria struct {
	MixOrder MixOrderRef `xml:"MixOrder"`
}

func NewOrderRetrieveRQ(mixOrderID string) *OrderRetrieveRQ {
	return &OrderRetrieveRQ{
		XmlnsO: "https://www.mixvel.com/API/XSD/Mixvel_OrderRetrieveRQ/1_00",
		Request: OrderRetrieveRequest{
			OrderFilterCriteria: OrderFilterCriteria{
				MixOrder: MixOrderRef{MixOrderID: mixOrderID},
			},
		},
	}
}

func (r *OrderRetrieveRQ) Operation() schema.OperationName { return schema.OrderRetrieve }

func (r *OrderRetrieveRQ) payload() {}

type OrderChangeRQ struct {
	XMLName xml.Name           `xml:"o:Mixvel_OrderChangeRQ"`
	XmlnsO  string             `xml:"xmlns:o,attr"`
	Request OrderChangeRequest `xml:"Request"`
}

type OrderChangeRequest struct {
	MixOrder         MixOrderRef      `xml:"MixOrder"`
	PaymentFunctions PaymentFunctions `xml:"PaymentFunctions"`
}

type PaymentFunctions struct {
	PaymentProcessingDetails PaymentProcessingDetails `xml:"PaymentProcessingDetails"`
}

type PaymentProcessingDetails struct {
	Amount        PaymentAmount `xml:"Amount"`
	PaymentMethod PaymentMethod `xml:"PaymentProcessingDetailsPaymentMethod"`
}

type PaymentAmount struct {
	CurCode string `xml:"CurCode,attr"`
	Value   int64  `xml:",chardata"`
}

type PaymentMethod struct {
	OtherPaymentMethod struct{} `xml:"OtherPaymentMethod"`
}

// NewOrderChangeRQ pays for the order. A missing currency means DefaultCurrency.
func NewOrderChangeRQ(mixOrderID string, amount schema.Amount) *OrderChangeRQ {
	currency := converting.Unwrap(amount.CurCode)
	if currency == "" {
		currency = schema.DefaultCurrency
	}

	return &OrderChangeRQ{
		XmlnsO: "https://www.mixvel.com/API/XSD/Mixvel_OrderChangeRQ/1_00",
		Request: OrderChangeRequest{
			MixOrder: MixOrderRef{MixOrderID: mixOrderID},
			PaymentFunctions: PaymentFunctions{
				PaymentProcessingDetails: PaymentProcessingDetails{
					Amount: PaymentAmount{
						CurCode: currency,
						Value:   amount.Amount,
					},
				},
			},
		},
	}
}

func (r *OrderChangeRQ) Operation() schema.OperationName { return schema.OrderChange }

func (r *OrderChangeRQ) payload() {}

type OrderCancelRQ struct {
	XMLName xml.Name           `xml:"m:Mixvel_OrderCancelRQ"`
	XmlnsM  string             `xml:"xmlns:m,attr"`
	Request OrderCancelRequest `xml:"Request"`
}

type OrderCancelRequest struct {
	MixOrder MixOrderRef `xml:"MixOrder"`
}

func NewOrderCancelRQ(mixOrderID string) *OrderCancelRQ {
	return &OrderCancelRQ{
		XmlnsM: "https://www.mixvel.com/API/XSD/Mixvel_OrderCancelRQ/1_01",
		Request: OrderCancelRequest{
			MixOrder: MixOrderRef{MixOrderID: mixOrderID},
		},
	}
}

func (r *OrderCancelRQ) Operation() schema.OperationName { return schema.OrderCancel }

func (r *OrderCancelRQ) payload() {}
