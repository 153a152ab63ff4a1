package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Venues the loader always materializes a config for.
var exchangeNames = []string{"binance", "coinbase", "kraken", "bybit"}

const (
	defaultEnvFile  = ".env"
	defaultMarkets  = "CRYPTO"
	defaultLogLevel = "INFO"
)

// Settings is the process-wide configuration snapshot. Build it once with
// Load at process entry and hand it to whichever component needs it; nothing
// mutates it afterwards, so unsynchronized concurrent reads are safe.
type Settings struct {
	FirebaseCredentials string
	FirebaseDatabase    string

	TelegramBotToken string
	TelegramChatID   string

	Exchanges map[string]ExchangeConfig
	Trading   TradingConfig

	EnabledMarkets []MarketType
	LogLevel       string
}

// Options control where Load looks before reading the process environment.
type Options struct {
	// EnvFile is a .env-style file loaded into the environment first.
	// Variables already set in the process win over file values. When empty,
	// a ".env" in the working directory is used if one exists; naming a file
	// explicitly makes its absence an error.
	EnvFile string
}

// Load reads the environment into a fresh Settings aggregate. Defaulting and
// parse problems are logged and do not fail the load; call Validate on the
// result to collect the startup rules the caller should act on.
func Load(opts Options) (*Settings, error) {
	file := opts.EnvFile
	if file == "" {
		file = defaultEnvFile
		if _, err := os.Stat(file); err != nil {
			file = ""
		}
	}
	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return nil, errors.Wrapf(err, "loading env file %s", file)
		}
	}

	exchanges, err := loadExchangeConfigs()
	if err != nil {
		return nil, err
	}

	return &Settings{
		FirebaseCredentials: envString("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseDatabase:    envString("FIREBASE_DATABASE_URL", ""),
		TelegramBotToken:    envString("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      envString("TELEGRAM_CHAT_ID", ""),
		Exchanges:           exchanges,
		Trading:             loadTradingConfig(),
		EnabledMarkets:      ParseMarkets(envString("ENABLED_MARKETS", defaultMarkets)),
		LogLevel:            envString("LOG_LEVEL", defaultLogLevel),
	}, nil
}

func loadExchangeConfigs() (map[string]ExchangeConfig, error) {
	exchanges := make(map[string]ExchangeConfig, len(exchangeNames))

	for _, name := range exchangeNames {
		prefix := strings.ToUpper(name)

		cfg, err := NewExchangeConfig(ExchangeConfig{
			Name:      name,
			APIKey:    envString(prefix+"_API_KEY", ""),
			APISecret: envString(prefix+"_API_SECRET", ""),
			Sandbox:   envBool(prefix+"_SANDBOX", true),
			RateLimit: envInt(prefix+"_RATE_LIMIT", DefaultRateLimit),
			Enabled:   envBool(prefix+"_ENABLED", false),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "exchange %s", name)
		}

		exchanges[name] = cfg
	}

	return exchanges, nil
}
