// Package config handles the parsing and validation of the command line configuration
// from arguments and environment variables.
package config

import (
	"errors"
	"time"

	"github.com/gamevidea/bedrockping/internal/logger"
	"github.com/gamevidea/bedrockping/ping"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

// ErrNoHost is returned when no server host was given.
var ErrNoHost = errors.New("required argument `HOST' was not provided")

// Config represents the complete command line configuration.
type Config struct {
	Query  Query         `group:"Query Options" env-namespace:"BEDROCKPING"`
	Logger logger.Config `group:"Logger Options" namespace:"log" env-namespace:"BEDROCKPING_LOG"`

	Args struct {
		Host string `positional-arg-name:"HOST" description:"Server host name or address"`
	} `positional-args:"yes"`

	Version bool `short:"v" long:"version" description:"Print version and build info"`
}

// Query holds the options of a single status query.
type Query struct {
	Port         int           `short:"p" long:"port" env:"PORT" description:"Server port" default:"19132"`
	Timeout      time.Duration `short:"t" long:"timeout" env:"TIMEOUT" description:"Send and receive timeout" default:"2s"`
	ReadTimeout  time.Duration `long:"read-timeout" env:"READ_TIMEOUT" description:"Receive timeout, overrides --timeout"`
	WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" description:"Send timeout, overrides --timeout"`
	BufferSize   int           `long:"buffer-size" env:"BUFFER_SIZE" description:"Pong receive buffer size, longer pongs are truncated" default:"1500"`
	JSON         bool          `short:"j" long:"json" env:"JSON" description:"Print the status as JSON"`
}

// Parse reads the configuration from args and environment variables. A help request is reported
// as a *flags.Error of type flags.ErrHelp, after the help text was printed.
func Parse(args []string) (*Config, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if !cfg.Version && cfg.Args.Host == "" {
		return nil, ErrNoHost
	}

	return &cfg, nil
}

// Options converts the query configuration into ping options logging to l.
func (q Query) Options(l *zerolog.Logger) ping.Options {
	opts := ping.Options{
		Port:         q.Port,
		ReadTimeout:  q.Timeout,
		WriteTimeout: q.Timeout,
		BufferSize:   q.BufferSize,
		Logger:       l,
	}

	if q.ReadTimeout > 0 {
		opts.ReadTimeout = q.ReadTimeout
	}

	if q.WriteTimeout > 0 {
		opts.WriteTimeout = q.WriteTimeout
	}

	return opts
}
