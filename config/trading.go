package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradingConfig carries the global risk, execution and monitoring parameters.
// Position, loss and slippage limits are fractions of the portfolio; minimum
// volume is in currency units.
type TradingConfig struct {
	MaxPositionSize   decimal.Decimal
	DailyLossLimit    decimal.Decimal
	RiskTolerance     RiskTolerance
	SlippageTolerance decimal.Decimal
	MinimumVolume     decimal.Decimal
	HeartbeatInterval time.Duration
	MarketDataRefresh time.Duration
}

// DefaultTradingConfig returns the documented baseline: 10% position cap, 2%
// daily loss limit, moderate risk, 0.5% slippage tolerance.
func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		MaxPositionSize:   decimal.RequireFromString("0.1"),
		DailyLossLimit:    decimal.RequireFromString("0.02"),
		RiskTolerance:     RiskModerate,
		SlippageTolerance: decimal.RequireFromString("0.005"),
		MinimumVolume:     decimal.RequireFromString("10000"),
		HeartbeatInterval: 60 * time.Second,
		MarketDataRefresh: 30 * time.Second,
	}
}

func loadTradingConfig() TradingConfig {
	cfg := DefaultTradingConfig()

	cfg.MaxPositionSize = envDecimal("MAX_POSITION_SIZE", cfg.MaxPositionSize)
	cfg.DailyLossLimit = envDecimal("DAILY_LOSS_LIMIT", cfg.DailyLossLimit)
	cfg.RiskTolerance = envRiskTolerance("RISK_TOLERANCE", cfg.RiskTolerance)
	cfg.SlippageTolerance = envDecimal("SLIPPAGE_TOLERANCE", cfg.SlippageTolerance)
	cfg.MinimumVolume = envDecimal("MINIMUM_VOLUME", cfg.MinimumVolume)
	cfg.HeartbeatInterval = envSeconds("HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.MarketDataRefresh = envSeconds("MARKET_DATA_REFRESH", cfg.MarketDataRefresh)

	return cfg
}
