package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/quantspark/tradehub/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:  "tradehub",
		Usage: "trading hub configuration tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "`.env` file loaded before the process environment",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "load the configuration and report every validation problem",
				Action: runCheck,
			},
			{
				Name:   "show",
				Usage:  "print the loaded configuration with secrets redacted",
				Action: runShow,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("tradehub failed")
	}
}

func load(c *cli.Context) (*config.Settings, error) {
	settings, err := config.Load(config.Options{EnvFile: c.String("env-file")})
	if err != nil {
		return nil, err
	}
	applyLogLevel(settings.LogLevel)
	return settings, nil
}

func runCheck(c *cli.Context) error {
	settings, err := load(c)
	if err != nil {
		return err
	}

	problems := settings.Validate()
	for _, p := range problems {
		log.Error().Msg(p)
	}
	if len(problems) > 0 {
		return cli.Exit(fmt.Sprintf("configuration invalid: %d problem(s)", len(problems)), 1)
	}

	log.Info().Msg("configuration OK")
	return nil
}

func runShow(c *cli.Context) error {
	settings, err := load(c)
	if err != nil {
		return err
	}

	out, err := settings.RedactedYAML()
	if err != nil {
		return err
	}

	fmt.Print(string(out))
	return nil
}

func applyLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, keeping info")
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
