package mixvel

import (
	"context"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel/ndc"
	"bitbucket.org/crgw/mixvel-client/internal/mixvel/parsing"
	"github.com/golang-jwt/jwt/v4"
)

// Auth logs in and replaces the held token.
func (c *Client) Auth(ctx context.Context) (string, error) {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()

	return c.login(ctx)
}

// TokenExpiry is the expiry claimed by the held token, when it has one.
// MixVel tokens are never refreshed; an expired token surfaces as an APIFault.
func (c *Client) TokenExpiry() (time.Time, bool) {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()

	return c.tokenExpiry, !c.tokenExpiry.IsZero()
}

func (c *Client) bearerToken(ctx context.Context) (string, error) {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	return c.login(ctx)
}

// login must be called with tokenLock held.
func (c *Client) login(ctx context.Context) (string, error) {
	payload, err := c.execute(ctx, ndc.NewAuthRQ(
		c.credentials.Login,
		c.credentials.Password,
		c.credentials.StructureUnitID,
	))
	if err != nil {
		return "", err
	}

	token, err := parsing.ParseAuthToken(payload)
	if err != nil {
		return "", err
	}

	c.token = token
	c.tokenExpiry = tokenExpiry(token)

	message := c.logger.Info().Str("label", "mixvel-auth")
	if !c.tokenExpiry.IsZero() {
		message.Time("expires_at", c.tokenExpiry)
	}
	message.Msg("token acquired")

	return token, nil
}

// tokenExpiry reads the exp claim without verifying the signature. Opaque
// tokens give the zero time.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
