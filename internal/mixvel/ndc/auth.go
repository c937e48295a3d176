package ndc

import (
	"encoding/xml"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

type AuthRQ struct {
	XMLName         xml.Name `xml:"a:Auth"`
	XmlnsA          string   `xml:"xmlns:a,attr"`
	Login           string   `xml:"Login"`
	Password        string   `xml:"Password"`
	StructureUnitID string   `xml:"StructureUnitID"`
}

func NewAuthRQ(login string, password string, structureUnitID string) *AuthRQ {
	return &AuthRQ{
		XmlnsA:          "https://www.mixvel.com/API/XSD/mixvel_auth/1_01",
		Login:           login,
		Password:        password,
		StructureUnitID: structureUnitID,
	}
}

func (r *AuthRQ) Operation() schema.OperationName { return schema.Auth }

func (r *AuthRQ) payload() {}
