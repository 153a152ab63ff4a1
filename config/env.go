package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// One rule for every typed lookup: an absent variable takes the default
// silently, a set but unparsable one is logged with the variable name and
// then takes the default. Nothing here aborts the load.

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// envBool follows strconv.ParseBool, so "1", "t" and "TRUE" all count.
func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		warnUnparsable(key, v, "boolean")
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		warnUnparsable(key, v, "integer")
		return def
	}
	return n
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		warnUnparsable(key, v, "decimal")
		return def
	}
	return d
}

// envSeconds reads a whole number of seconds.
func envSeconds(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		warnUnparsable(key, v, "seconds")
		return def
	}
	return time.Duration(n) * time.Second
}

func envRiskTolerance(key string, def RiskTolerance) RiskTolerance {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	profile, known := ParseRiskTolerance(v)
	if !known {
		warnUnparsable(key, v, "risk tolerance")
		return def
	}
	return profile
}

func warnUnparsable(key, value, kind string) {
	log.Warn().Str("var", key).Str("value", value).Msgf("unparsable %s, using default", kind)
}
