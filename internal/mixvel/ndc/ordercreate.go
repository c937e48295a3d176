package ndc

import (
	"encoding/xml"
	"fmt"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

const contactTypePersonal = "personal"

type OrderCreateRQ struct {
	XMLName xml.Name           `xml:"m:Mixvel_OrderCreateRQ"`
	XmlnsM  string             `xml:"xmlns:m,attr"`
	Request OrderCreateRequest `xml:"Request"`
}

type OrderCreateRequest struct {
	CreateOrder CreateOrder     `xml:"CreateOrder"`
	DataLists   CreateDataLists `xml:"DataLists"`
}

type CreateOrder struct {
	SelectedOffer SelectedOffer `xml:"SelectedOffer"`
}

type SelectedOffer struct {
	OfferRefID        string              `xml:"OfferRefID"`
	SelectedOfferItem []SelectedOfferItem `xml:"SelectedOfferItem"`
}

type SelectedOfferItem struct {
	OfferItemRefID string   `xml:"OfferItemRefID"`
	PaxRefID       []string `xml:"PaxRefID"`
}

// CreateDataLists always carries a ContactInfoList, empty when no passenger
// has contact detail.
type CreateDataLists struct {
	ContactInfoList ContactInfoList `xml:"ContactInfoList"`
	PaxList         PaxList         `xml:"PaxList"`
}

type ContactInfoList struct {
	ContactInfo []ContactInfo `xml:"ContactInfo"`
}

type ContactInfo struct {
	ContactInfoID string        `xml:"ContactInfoID"`
	EmailAddress  *EmailAddress `xml:"EmailAddress,omitempty"`
	Phone         *Phone        `xml:"Phone,omitempty"`
}

type EmailAddress struct {
	ContactTypeText  string `xml:"ContactTypeText"`
	EmailAddressText string `xml:"EmailAddressText"`
}

type Phone struct {
	ContactTypeText string `xml:"ContactTypeText"`
	PhoneNumber     string `xml:"PhoneNumber"`
}

type PaxList struct {
	Pax []Pax `xml:"Pax"`
}

type Pax struct {
	ContactInfoRefID string      `xml:"ContactInfoRefID,omitempty"`
	IdentityDoc      IdentityDoc `xml:"IdentityDoc"`
	Individual       Individual  `xml:"Individual"`
	PaxID            string      `xml:"PaxID"`
	PTC              string      `xml:"PTC"`
}

type IdentityDoc struct {
	ExpiryDate          Date   `xml:"ExpiryDate"`
	IdentityDocID       string `xml:"IdentityDocID"`
	IdentityDocTypeCode string `xml:"IdentityDocTypeCode"`
	IssuingCountryCode  string `xml:"IssuingCountryCode"`
	Surname             string `xml:"Surname"`
}

type Individual struct {
	Birthdate  Date   `xml:"Birthdate"`
	GenderCode string `xml:"GenderCode"`
	GivenName  string `xml:"GivenName"`
	MiddleName string `xml:"MiddleName,omitempty"`
	Surname    string `xml:"Surname"`
}

func NewOrderCreateRQ(selectedOffer schema.SelectedOffer, paxes []schema.Passenger) *OrderCreateRQ {
	items := make([]SelectedOfferItem, 0, len(selectedOffer.SelectedOfferItems))
	for _, item := range selectedOffer.SelectedOfferItems {
		items = append(items, SelectedOfferItem{
			OfferItemRefID: item.OfferItemRefID,
			PaxRefID:       item.PaxRefIDs,
		})
	}

	contacts := make([]ContactInfo, 0)
	paxList := make([]Pax, 0, len(paxes))
	for index, pax := range paxes {
		var contactID string
		if pax.HasContact() {
			contactID = fmt.Sprintf("Contact-%d", index+1)
			contacts = append(contacts, newContactInfo(contactID, pax.Detail))
		}

		paxList = append(paxList, newPax(pax, contactID))
	}

	return &OrderCreateRQ{
		XmlnsM: "https://www.mixvel.com/API/XSD/Mixvel_OrderCreateRQ/1_01",
		Request: OrderCreateRequest{
			CreateOrder: CreateOrder{
				SelectedOffer: SelectedOffer{
					OfferRefID:        selectedOffer.OfferRefID,
					SelectedOfferItem: items,
				},
			},
			DataLists: CreateDataLists{
				ContactInfoList: ContactInfoList{ContactInfo: contacts},
				PaxList:         PaxList{Pax: paxList},
			},
		},
	}
}

func newContactInfo(contactID string, detail schema.PassengerDetail) ContactInfo {
	contact := ContactInfo{ContactInfoID: contactID}

	if detail.Email != "" {
		contact.EmailAddress = &EmailAddress{
			ContactTypeText:  contactTypePersonal,
			EmailAddressText: detail.Email,
		}
	}

	if detail.Phone != "" {
		contact.Phone = &Phone{
			ContactTypeText: contactTypePersonal,
			PhoneNumber:     detail.Phone,
		}
	}

	return contact
}

func newPax(pax schema.Passenger, contactID string) Pax {
	individual := pax.Detail.Individual
	document := pax.Detail.Document

	return Pax{
		ContactInfoRefID: contactID,
		IdentityDoc: IdentityDoc{
			ExpiryDate:          Date(document.ExpiryDate),
			IdentityDocID:       document.DocID,
			IdentityDocTypeCode: document.TypeCode,
			IssuingCountryCode:  document.IssuingCountryCode,
			Surname:             individual.Surname,
		},
		Individual: Individual{
			Birthdate:  Date(individual.Birthdate),
			GenderCode: individual.Gender,
			GivenName:  individual.GivenName,
			MiddleName: individual.MiddleName,
			Surname:    individual.Surname,
		},
		PaxID: pax.PaxID,
		PTC:   pax.PTC,
	}
}

func (r *OrderCreateRQ) Operation() schema.OperationName { return schema.OrderCreate }

func (r *OrderCreateRQ) payload() {}
