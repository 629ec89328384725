package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a               remote API address (e.g. http://localhost:8000)
//	-request-timeout request timeout (e.g. "30s"), 0 keeps the default
//	-d               SQLite DSN of the local token store
//	-page-size       number of articles per feed load
//	-refresh         periodic feed refresh interval (e.g. "5m"), 0 disables
//	-rollback-token  clear the token when loading the user after login fails
//	-currency        ISO 4217 code used to render amounts
//	-log             log file path
//	-c/-config       JSON config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("okto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address         string
		requestTimeout  time.Duration
		dsn             string
		pageSize        int
		refreshInterval time.Duration
		rollbackToken   bool
		currency        string
		logFile         string
		jsonConfigPath  string
	)

	fs.StringVar(&address, "a", "", "Remote API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.IntVar(&pageSize, "page-size", 0, "Articles per feed load")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Feed refresh interval (e.g., 5m)")
	fs.BoolVar(&rollbackToken, "rollback-token", false, "Clear token when user load fails after login")
	fs.StringVar(&currency, "currency", "", "Currency code for amounts")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			RollbackTokenOnLoadFailure: rollbackToken,
			Currency:                   currency,
			LogFile:                    logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Feed: Feed{
			PageSize:        pageSize,
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
