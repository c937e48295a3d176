package converting

import (
	"net/http"
	"regexp"
)

const redacted = "[REDACTED]"

// RedactHeaders copies headers into a plain map, replacing the values of the
// named headers.
func RedactHeaders(headers http.Header, names ...string) map[string][]string {
	copied := make(map[string][]string, len(headers))

	for key, values := range headers {
		copied[key] = append([]string(nil), values...)
	}

	for _, name := range names {
		key := http.CanonicalHeaderKey(name)
		if _, ok := copied[key]; ok {
			copied[key] = []string{redacted}
		}
	}

	return copied
}

// RedactElements replaces the text of the named XML elements, with or without
// a namespace prefix.
func RedactElements(body string, names ...string) string {
	for _, name := range names {
		element := regexp.MustCompile(`(<(?:[\w.-]+:)?` + regexp.QuoteMeta(name) + `(?:\s[^>]*)?>)[^<]*(</(?:[\w.-]+:)?` + regexp.QuoteMeta(name) + `>)`)
		body = element.ReplaceAllString(body, "${1}"+redacted+"${2}")
	}

	return body
}
