package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const redacted = "[REDACTED]"

type exchangeSnapshot struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	Sandbox   bool   `yaml:"sandbox"`
	RateLimit int    `yaml:"rate_limit"`
	Enabled   bool   `yaml:"enabled"`
}

type tradingSnapshot struct {
	MaxPositionSize   string `yaml:"max_position_size"`
	DailyLossLimit    string `yaml:"daily_loss_limit"`
	RiskTolerance     string `yaml:"risk_tolerance"`
	RiskWeight        string `yaml:"risk_weight"`
	SlippageTolerance string `yaml:"slippage_tolerance"`
	MinimumVolume     string `yaml:"minimum_volume"`
	HeartbeatInterval string `yaml:"heartbeat_interval"`
	MarketDataRefresh string `yaml:"market_data_refresh"`
}

type settingsSnapshot struct {
	FirebaseCredentials string                      `yaml:"firebase_credentials"`
	FirebaseDatabase    string                      `yaml:"firebase_database"`
	TelegramBotToken    string                      `yaml:"telegram_bot_token"`
	TelegramChatID      string                      `yaml:"telegram_chat_id"`
	Exchanges           map[string]exchangeSnapshot `yaml:"exchanges"`
	Trading             tradingSnapshot             `yaml:"trading"`
	EnabledMarkets      []MarketType                `yaml:"enabled_markets"`
	LogLevel            string                      `yaml:"log_level"`
}

// RedactedYAML renders the settings for operators with every secret masked.
// Fields that were never set render empty so a missing credential is
// distinguishable from a hidden one.
func (s *Settings) RedactedYAML() ([]byte, error) {
	snap := settingsSnapshot{
		FirebaseCredentials: s.FirebaseCredentials,
		FirebaseDatabase:    s.FirebaseDatabase,
		TelegramBotToken:    mask(s.TelegramBotToken),
		TelegramChatID:      s.TelegramChatID,
		Exchanges:           make(map[string]exchangeSnapshot, len(s.Exchanges)),
		Trading: tradingSnapshot{
			MaxPositionSize:   s.Trading.MaxPositionSize.String(),
			DailyLossLimit:    s.Trading.DailyLossLimit.String(),
			RiskTolerance:     s.Trading.RiskTolerance.String(),
			RiskWeight:        s.Trading.RiskTolerance.Weight().String(),
			SlippageTolerance: s.Trading.SlippageTolerance.String(),
			MinimumVolume:     s.Trading.MinimumVolume.String(),
			HeartbeatInterval: s.Trading.HeartbeatInterval.String(),
			MarketDataRefresh: s.Trading.MarketDataRefresh.String(),
		},
		EnabledMarkets: s.EnabledMarkets,
		LogLevel:       s.LogLevel,
	}

	for name, e := range s.Exchanges {
		snap.Exchanges[name] = exchangeSnapshot{
			APIKey:    mask(e.APIKey),
			APISecret: mask(e.APISecret),
			Sandbox:   e.Sandbox,
			RateLimit: e.RateLimit,
			Enabled:   e.Enabled,
		}
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling settings")
	}
	return out, nil
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}
