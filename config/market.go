package config

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// MarketType is a supported trading asset class.
type MarketType string

const (
	MarketCrypto   MarketType = "CRYPTO"
	MarketEquities MarketType = "EQUITIES"
	MarketForex    MarketType = "FOREX"
	MarketFutures  MarketType = "FUTURES"
)

var marketTypes = map[string]MarketType{
	"CRYPTO":   MarketCrypto,
	"EQUITIES": MarketEquities,
	"FOREX":    MarketForex,
	"FUTURES":  MarketFutures,
}

// ParseMarkets splits a comma-separated market list into the known market
// types, preserving order. Unknown and repeated tokens are dropped with a
// warning, so the result may be empty.
func ParseMarkets(raw string) []MarketType {
	var markets []MarketType
	seen := make(map[MarketType]bool)

	for _, token := range strings.Split(raw, ",") {
		market, ok := marketTypes[strings.ToUpper(strings.TrimSpace(token))]
		if !ok {
			log.Warn().Str("market", token).Msg("unknown market type")
			continue
		}
		if seen[market] {
			log.Warn().Str("market", token).Msg("duplicate market type")
			continue
		}
		seen[market] = true
		markets = append(markets, market)
	}

	return markets
}
