package main

import (
	"os"
	"strings"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/mixvel"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

type config struct {
	credentials mixvel.Credentials
	gateway     string
	verifySSL   bool
	timeout     time.Duration
	tripPath    string
	logLevel    string
}

func loadConfig(getenv func(string) string) config {
	cfg := config{
		credentials: mixvel.Credentials{
			Login:           getenv("MIXVEL_LOGIN"),
			Password:        getenv("MIXVEL_PASSWORD"),
			StructureUnitID: getenv("MIXVEL_STRUCTURE_UNIT_ID"),
		},
		gateway:   getenv("MIXVEL_GATEWAY"),
		verifySSL: true,
		tripPath:  getenv("MIXVEL_TRIP_FILE"),
		logLevel:  getenv("LOG_LEVEL"),
	}

	if cfg.gateway == "" {
		cfg.gateway = mixvel.TestGateway
	}

	if cfg.tripPath == "" {
		cfg.tripPath = "trip.yaml"
	}

	if value := strings.TrimSpace(getenv("MIXVEL_VERIFY_SSL")); value != "" {
		cfg.verifySSL = cast.ToBool(value)
	}

	if milliseconds := cast.ToInt64(strings.TrimSpace(getenv("MIXVEL_TIMEOUT_MS"))); milliseconds > 0 {
		cfg.timeout = time.Duration(milliseconds) * time.Millisecond
	}

	return cfg
}

func (c config) options() []mixvel.OptionFunc {
	options := []mixvel.OptionFunc{
		mixvel.WithName("quickstart"),
		mixvel.WithGateway(c.gateway),
		mixvel.WithVerifySSL(c.verifySSL),
	}

	if c.timeout > 0 {
		options = append(options, mixvel.WithTimeout(c.timeout))
	}

	return options
}

func newLogger(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Str("app", "mixvel-quickstart").
		Logger()

	return &logger
}
