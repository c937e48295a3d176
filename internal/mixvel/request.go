package mixvel

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/mixvel/parsing"
	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/requesting"
	"bitbucket.org/crgw/mixvel-client/internal/tools/slowlog"
	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// execute sends one payload and returns the AppData element of the answer.
// Faults reported by MixVel come back as *schema.APIFault.
func (c *Client) execute(ctx context.Context, payload ndc.Message) (*etree.Element, error) {
	operation := payload.Operation()
	slowLogger := slowlog.CreateLogger(c.logger, string(operation))
	defer c.logTimings(operation, slowLogger)

	path, err := endpoint(operation)
	if err != nil {
		return nil, err
	}

	var token string
	if isAuthenticated(operation) {
		token, err = c.bearerToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	slowLogger.Start("build")
	body, err := ndc.Marshal(ndc.NewEnvelope(payload, uuid.NewString(), time.Now().UTC()))
	slowLogger.Stop("build")
	if err != nil {
		return nil, err
	}

	slowLogger.Start("roundtrip")
	responseBytes, err := c.send(ctx, operation, path, body, token)
	slowLogger.Stop("roundtrip")
	if err != nil {
		return nil, err
	}

	slowLogger.Start("parse")
	defer slowLogger.Stop("parse")

	root, err := parsing.ParseDocument(responseBytes)
	if err != nil {
		return nil, err
	}

	if fault := parsing.DetectFault(root); fault != nil {
		c.logger.Warn().
			Str("operation", string(operation)).
			Str("code", fault.Code).
			Str("type", fault.Type).
			Msg(fault.Description)

		return nil, fault
	}

	return parsing.AppData(root)
}

func (c *Client) send(ctx context.Context, operation schema.OperationName, path string, body []byte, token string) ([]byte, error) {
	ctx = context.WithValue(ctx, schema.OperationKey, operation)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.options.Gateway()+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpRequest.Header.Set("Content-Type", "application/xml")
	httpRequest.Header.Set("User-Agent", c.options.UserAgent())
	if token != "" {
		httpRequest.Header.Set("Authorization", "Bearer "+token)
	}

	// auth exchanges carry the password and the token
	if isAuthenticated(operation) {
		c.logger.Debug().Str("operation", string(operation)).Msg(string(body))
	}

	response, err := requesting.RequestErrors(c.httpClient.Do(httpRequest))
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		return nil, schema.NewConnectionError(err)
	}

	if isAuthenticated(operation) {
		c.logger.Debug().Str("operation", string(operation)).Msg(string(responseBytes))
	}

	return responseBytes, nil
}

// logTimings reports every phase of one execute call in a single line.
func (c *Client) logTimings(operation schema.OperationName, slowLogger slowlog.Logger) {
	event := c.logger.Debug().
		Str("label", "mixvel-timings").
		Str("operation", string(operation))

	for phase, duration := range slowLogger.Timings() {
		event = event.Dur(phase, duration)
	}

	event.Msg("")
}
