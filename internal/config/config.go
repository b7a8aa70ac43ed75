package config

import "github.com/spf13/viper"

// Version is the running binary's version, overridable at build time via
// -ldflags "-X github.com/joestump/harnessd/internal/config.Version=...".
var Version = "0.1.0-dev"

// Config holds all runtime configuration for the harness daemon.
type Config struct {
	StateDir    string
	ConfirmDir  string
	RateLimit   int
	Verbose     bool
	LogLevel    string
	ReportsDB   string
}

// Load reads configuration from viper, which merges flag values, env vars,
// and defaults (set up by the cobra command in cmd/harnessd).
func Load() Config {
	return Config{
		StateDir:   viper.GetString("state_dir"),
		ConfirmDir: viper.GetString("confirm_dir"),
		RateLimit:  viper.GetInt("rate_limit"),
		Verbose:    viper.GetBool("verbose"),
		LogLevel:   viper.GetString("log_level"),
		ReportsDB:  viper.GetString("reports_db"),
	}
}
