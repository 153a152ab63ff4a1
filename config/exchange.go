package config

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// DefaultRateLimit is the per-venue request budget in requests per minute.
const DefaultRateLimit = 1000

var errEmptyExchangeName = errors.New("exchange name cannot be empty")

// ExchangeConfig holds one venue's access configuration.
type ExchangeConfig struct {
	Name      string
	APIKey    string
	APISecret string
	Sandbox   bool
	RateLimit int
	Enabled   bool
}

// NewExchangeConfig checks and finalizes a venue record. An empty name is
// rejected; a zero rate limit takes the default. A venue enabled for
// production without both credentials is still built, but the gap is logged
// so it surfaces at startup.
func NewExchangeConfig(c ExchangeConfig) (ExchangeConfig, error) {
	if c.Name == "" {
		return ExchangeConfig{}, errEmptyExchangeName
	}

	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}

	if c.Enabled && !c.Sandbox && (c.APIKey == "" || c.APISecret == "") {
		log.Warn().Str("exchange", c.Name).Msg("missing API credentials for production mode")
	}

	return c, nil
}
