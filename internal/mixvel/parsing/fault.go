package parsing

import (
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"github.com/beevik/etree"
)

// DetectFault returns the first Error element anywhere in the response as an
// APIFault, or nil. The tree must already be stripped of namespaces.
func DetectFault(root *etree.Element) *schema.APIFault {
	element := root.FindElement(".//Error")
	if element == nil {
		return nil
	}

	fault := &schema.APIFault{Code: schema.UndefinedFaultCode}

	if errorType := optionalText(element, "./ErrorType"); errorType != nil {
		fault.Type = *errorType
	}
	if code := optionalText(element, "./Code"); code != nil {
		fault.Code = *code
	}
	if description := optionalText(element, "./DescText"); description != nil {
		fault.Description = *description
	}

	return fault
}

// AppData returns the payload element of a response envelope.
func AppData(root *etree.Element) (*etree.Element, error) {
	return requiredChild(root, ".//Body/AppData/*")
}
