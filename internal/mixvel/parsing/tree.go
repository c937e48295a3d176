package parsing

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
	"github.com/beevik/etree"
)

var (
	ErrMissingElement = errors.New("element is missing")
	ErrEmptyElement   = errors.New("element is empty")
)

// ParseDocument reads a response body and strips every namespace from it.
func ParseDocument(body []byte) (*etree.Element, error) {
	document := etree.NewDocument()
	if err := document.ReadFromBytes(body); err != nil {
		return nil, &schema.ParseError{Element: "document", Path: "/", Err: err}
	}

	root := document.Root()
	if root == nil {
		return nil, &schema.ParseError{Element: "document", Path: "/", Err: ErrMissingElement}
	}

	StripNamespaces(root)

	return root, nil
}

// StripNamespaces drops prefixes and namespace declarations from the element
// and all of its descendants, in place.
func StripNamespaces(element *etree.Element) {
	element.Space = ""
	element.Tag = LocalName(element.Tag)

	attributes := element.Attr[:0]
	for _, attribute := range element.Attr {
		if attribute.Space == "xmlns" || (attribute.Space == "" && attribute.Key == "xmlns") {
			continue
		}
		attribute.Space = ""
		attributes = append(attributes, attribute)
	}
	element.Attr = attributes

	for _, child := range element.ChildElements() {
		StripNamespaces(child)
	}
}

// LocalName turns "{uri}Local" into "Local". Other tags are returned as is.
func LocalName(tag string) string {
	if !strings.HasPrefix(tag, "{") {
		return tag
	}

	if end := strings.IndexByte(tag, '}'); end >= 0 {
		return tag[end+1:]
	}

	return tag
}

func parseError(parent *etree.Element, path string, err error) error {
	return &schema.ParseError{Element: path, Path: parent.GetPath(), Err: err}
}

func elementError(element *etree.Element, err error) error {
	return &schema.ParseError{Element: element.Tag, Path: element.GetPath(), Err: err}
}

func text(element *etree.Element) string {
	return strings.TrimSpace(element.Text())
}

func requiredChild(parent *etree.Element, path string) (*etree.Element, error) {
	child := parent.FindElement(path)
	if child == nil {
		return nil, parseError(parent, path, ErrMissingElement)
	}
	return child, nil
}

func requiredText(parent *etree.Element, path string) (string, error) {
	child, err := requiredChild(parent, path)
	if err != nil {
		return "", err
	}

	value := text(child)
	if value == "" {
		return "", parseError(parent, path, ErrEmptyElement)
	}

	return value, nil
}

// optionalText is nil when the element is absent or has no text.
func optionalText(parent *etree.Element, path string) *string {
	child := parent.FindElement(path)
	if child == nil {
		return nil
	}

	return converting.NilIfEmpty(text(child))
}

// textList collects the non-empty texts of all matching elements.
func textList(parent *etree.Element, path string) []string {
	values := make([]string, 0)
	for _, child := range parent.FindElements(path) {
		if value := text(child); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func optionalInt(parent *etree.Element, path string) (*int, error) {
	value := optionalText(parent, path)
	if value == nil {
		return nil, nil
	}

	number, err := strconv.Atoi(*value)
	if err != nil {
		return nil, parseError(parent, path, err)
	}

	return &number, nil
}

func requiredDateTime(parent *etree.Element, path string) (time.Time, error) {
	value, err := requiredText(parent, path)
	if err != nil {
		return time.Time{}, err
	}

	parsed, err := ndc.ParseDateTime(value)
	if err != nil {
		return time.Time{}, parseError(parent, path, err)
	}

	return parsed, nil
}
