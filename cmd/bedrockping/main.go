// main is the entry point of the bedrockping command.
// It queries the status of one Bedrock server and prints it.
package main

import (
	"errors"
	"os"

	"github.com/gamevidea/bedrockping/internal/config"
	"github.com/gamevidea/bedrockping/internal/logger"
	"github.com/gamevidea/bedrockping/internal/vars"
	"github.com/gamevidea/bedrockping/ping"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load() // Load .env file if present

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if errors.Is(err, config.ErrNoHost) {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
		}
		os.Exit(2)
	}

	if cfg.Version {
		vars.Print(os.Stdout)
		return
	}

	closeLog := logger.Setup(cfg.Logger)

	status, err := ping.QueryOptions(cfg.Args.Host, cfg.Query.Options(&log.Logger))
	if err != nil {
		log.Error().Err(err).Str("host", cfg.Args.Host).Int("port", cfg.Query.Port).Msg("Status query failed")
		closeLog()
		os.Exit(1)
	}

	if err := printStatus(os.Stdout, status, cfg.Query.JSON); err != nil {
		log.Error().Err(err).Msg("Failed to print status")
		closeLog()
		os.Exit(1)
	}

	closeLog()
}
