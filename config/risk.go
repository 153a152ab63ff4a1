package config

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTolerance selects one of the risk management profiles.
type RiskTolerance int

const (
	RiskConservative RiskTolerance = iota
	RiskModerate
	RiskAggressive
)

var riskWeights = map[RiskTolerance]decimal.Decimal{
	RiskConservative: decimal.RequireFromString("0.25"),
	RiskModerate:     decimal.RequireFromString("0.5"),
	RiskAggressive:   decimal.RequireFromString("0.75"),
}

// Weight returns the numeric weight downstream risk logic applies for the
// profile.
func (r RiskTolerance) Weight() decimal.Decimal {
	return riskWeights[r]
}

func (r RiskTolerance) String() string {
	switch r {
	case RiskConservative:
		return "CONSERVATIVE"
	case RiskAggressive:
		return "AGGRESSIVE"
	default:
		return "MODERATE"
	}
}

// ParseRiskTolerance maps a profile name to its variant. The second return
// value reports whether the name was recognized; unknown names fall back to
// MODERATE.
func ParseRiskTolerance(raw string) (RiskTolerance, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONSERVATIVE":
		return RiskConservative, true
	case "MODERATE":
		return RiskModerate, true
	case "AGGRESSIVE":
		return RiskAggressive, true
	}
	return RiskModerate, false
}
