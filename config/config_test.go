package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = func() []string {
	keys := []string{
		"FIREBASE_CREDENTIALS_PATH",
		"FIREBASE_DATABASE_URL",
		"TELEGRAM_BOT_TOKEN",
		"TELEGRAM_CHAT_ID",
		"ENABLED_MARKETS",
		"LOG_LEVEL",
		"MAX_POSITION_SIZE",
		"DAILY_LOSS_LIMIT",
		"RISK_TOLERANCE",
		"SLIPPAGE_TOLERANCE",
		"MINIMUM_VOLUME",
		"HEARTBEAT_INTERVAL",
		"MARKET_DATA_REFRESH",
	}
	for _, name := range exchangeNames {
		prefix := strings.ToUpper(name)
		for _, suffix := range []string{"_API_KEY", "_API_SECRET", "_SANDBOX", "_ENABLED", "_RATE_LIMIT"} {
			keys = append(keys, prefix+suffix)
		}
	}
	return keys
}()

// unset removes a variable for the duration of the test; t.Setenv registers
// the restore before the removal.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		unset(t, key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	settings, err := Load(Options{})
	require.NoError(t, err)

	require.Len(t, settings.Exchanges, len(exchangeNames))
	for _, name := range exchangeNames {
		e, ok := settings.Exchanges[name]
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name)
		assert.Empty(t, e.APIKey)
		assert.Empty(t, e.APISecret)
		assert.True(t, e.Sandbox)
		assert.False(t, e.Enabled)
		assert.Equal(t, DefaultRateLimit, e.RateLimit)
	}

	assert.Empty(t, settings.FirebaseCredentials)
	assert.Empty(t, settings.TelegramBotToken)
	assert.Equal(t, []MarketType{MarketCrypto}, settings.EnabledMarkets)
	assert.Equal(t, "INFO", settings.LogLevel)

	trading := settings.Trading
	assert.True(t, trading.MaxPositionSize.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, trading.DailyLossLimit.Equal(decimal.RequireFromString("0.02")))
	assert.Equal(t, RiskModerate, trading.RiskTolerance)
	assert.True(t, trading.SlippageTolerance.Equal(decimal.RequireFromString("0.005")))
	assert.True(t, trading.MinimumVolume.Equal(decimal.RequireFromString("10000")))
	assert.Equal(t, 60*time.Second, trading.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, trading.MarketDataRefresh)
}

func TestLoadSingleEnabledExchange(t *testing.T) {
	clearEnv(t)
	t.Setenv("COINBASE_ENABLED", "true")
	t.Setenv("COINBASE_API_KEY", "key")
	t.Setenv("COINBASE_API_SECRET", "secret")

	settings, err := Load(Options{})
	require.NoError(t, err)

	var enabled []string
	for name, e := range settings.Exchanges {
		if e.Enabled {
			enabled = append(enabled, name)
		}
	}
	require.Equal(t, []string{"coinbase"}, enabled)
	assert.NotContains(t, settings.Validate(), ErrNoEnabledExchanges)
}

func TestLoadExchangeOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KRAKEN_SANDBOX", "false")
	t.Setenv("KRAKEN_RATE_LIMIT", "250")

	settings, err := Load(Options{})
	require.NoError(t, err)

	kraken := settings.Exchanges["kraken"]
	assert.False(t, kraken.Sandbox)
	assert.Equal(t, 250, kraken.RateLimit)

	// untouched venues keep their defaults
	assert.True(t, settings.Exchanges["bybit"].Sandbox)
	assert.Equal(t, DefaultRateLimit, settings.Exchanges["bybit"].RateLimit)
}

func TestLoadDeterministic(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/hub/creds.json")
	t.Setenv("BINANCE_ENABLED", "true")
	t.Setenv("ENABLED_MARKETS", "crypto,forex")

	first, err := Load(Options{})
	require.NoError(t, err)
	second, err := Load(Options{})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestLoadEnvFilePrecedence(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "hub.env")
	content := "FIREBASE_CREDENTIALS_PATH=/from/file\nKRAKEN_ENABLED=true\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/from/env")

	settings, err := Load(Options{EnvFile: file})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", settings.FirebaseCredentials)
	assert.True(t, settings.Exchanges["kraken"].Enabled)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.env")
}
