package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joestump/harnessd/internal/actionlog"
	"github.com/joestump/harnessd/internal/catalog"
	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/confirm"
	"github.com/joestump/harnessd/internal/config"
	"github.com/joestump/harnessd/internal/estop"
	"github.com/joestump/harnessd/internal/facade/fake"
	"github.com/joestump/harnessd/internal/mcpserver"
	"github.com/joestump/harnessd/internal/monitor"
	"github.com/joestump/harnessd/internal/ratelimit"
	"github.com/joestump/harnessd/internal/reportstore"
	"github.com/joestump/harnessd/internal/safezone"
	"github.com/joestump/harnessd/internal/session"
)

func main() {
	_ = godotenv.Load(".env")

	rootCmd := &cobra.Command{
		Use:   "harnessd",
		Short: "Desktop-automation command dispatcher for LLM agents, served over MCP stdio",
		RunE:  run,
	}

	f := rootCmd.Flags()
	f.String("state-dir", "/state", "directory for persistent state (reports database, confirmation files)")
	f.Int("rate-limit", 0, "max mutations admitted per second (0 disables the limit)")
	f.Bool("verbose", false, "enable verbose logging")
	f.String("log-level", "info", "log verbosity: debug, info, warn, error")

	bindFlag := func(viperKey, flagName string) {
		_ = viper.BindPFlag(viperKey, f.Lookup(flagName))
	}
	bindFlag("state_dir", "state-dir")
	bindFlag("rate_limit", "rate-limit")
	bindFlag("verbose", "verbose")
	bindFlag("log_level", "log-level")

	viper.SetEnvPrefix("HARNESSD")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	log.Printf("harnessd %s starting (state: %s)", config.Version, cfg.StateDir)

	reports, err := reportstore.Open(filepath.Join(cfg.StateDir, "reports.db"))
	if err != nil {
		return fmt.Errorf("open report store: %w", err)
	}
	defer reports.Close() //nolint:errcheck

	limiter := ratelimit.New()
	if cfg.RateLimit > 0 {
		limiter.SetLimit(cfg.RateLimit)
	}

	deps := &catalog.Deps{
		Caps:     fake.NewCapabilities(),
		Log:      actionlog.New(),
		Limiter:  limiter,
		SafeZone: safezone.New(),
		EStop:    estop.New(),
		Confirm:  confirm.NewWithDir(filepath.Join(cfg.StateDir, "confirm")),
		Monitors: monitor.New(),
		Reports:  reports,
		Session:  session.NewTracker(time.Now()),
		Secrets:  session.NewSecretFilter(),
	}
	if err := os.MkdirAll(filepath.Join(cfg.StateDir, "confirm"), 0755); err != nil {
		return fmt.Errorf("create confirm dir: %w", err)
	}

	registry := command.NewRegistry()
	catalog.Register(registry, deps)
	dispatcher := command.NewDispatcher(registry)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		log.Printf("received %s, shutting down...", sig)
		deps.Monitors.Dispose()
		os.Exit(0)
	}()

	return mcpserver.Run(dispatcher)
}
