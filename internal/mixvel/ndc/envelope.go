package ndc

import (
	"encoding/xml"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

const envelopeNamespace = "https://www.mixvel.com/API/XSD/mixvel_envelope/1_06"

// Message is an operation payload carried in the envelope AppData.
type Message interface {
	Operation() schema.OperationName
	payload()
}

type Envelope struct {
	XMLName     xml.Name     `xml:"MixEnv:Envelope"`
	XmlnsMixEnv string       `xml:"xmlns:MixEnv,attr"`
	Header      struct{}     `xml:"Header"`
	Body        EnvelopeBody `xml:"Body"`
}

type EnvelopeBody struct {
	MessageInfo MessageInfo `xml:"MessageInfo"`
	AppData     AppData     `xml:"AppData"`
}

type MessageInfo struct {
	MessageID string   `xml:"MessageId,attr"`
	TimeSent  DateTime `xml:"TimeSent,attr"`
}

// AppData holds exactly one payload; the payload names its own element.
type AppData struct {
	Payload Message
}

func NewEnvelope(payload Message, messageID string, timeSent time.Time) Envelope {
	return Envelope{
		XmlnsMixEnv: envelopeNamespace,
		Body: EnvelopeBody{
			MessageInfo: MessageInfo{
				MessageID: messageID,
				TimeSent:  DateTime(timeSent),
			},
			AppData: AppData{
				Payload: payload,
			},
		},
	}
}

func Marshal(envelope Envelope) ([]byte, error) {
	return xml.MarshalIndent(&envelope, "", "\t")
}
