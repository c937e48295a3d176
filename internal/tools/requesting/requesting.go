package requesting

import (
	"errors"
	"net"
	"net/http"
	"os"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of client.Do into a schema.TransportError.
// On a non 2xx status the response body is closed.
func RequestErrors(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		var netErr net.Error
		if os.IsTimeout(err) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, schema.NewTimeoutError(err)
		}

		return nil, schema.NewConnectionError(err)
	}

	if !isValidResponse(response.StatusCode) {
		response.Body.Close()
		return nil, schema.NewStatusError(response.StatusCode)
	}

	return response, nil
}
