package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	TokenSecret    string
	PortalTokenTTL time.Duration

	MailerAddress string
	MailerAPIKey  string
	MailFrom      string
	PortalBaseURL string

	CronSecret string

	OrderPrefix    string
	InvoicePrefix  string
	ProposalPrefix string

	LoginRateLimit  int
	LoginRateWindow time.Duration

	DeadlineWindow  time.Duration
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultPortalTokenTTL  = 7 * 24 * time.Hour
	defaultOrderPrefix     = "ORD"
	defaultInvoicePrefix   = "INV"
	defaultProposalPrefix  = "KP"
	defaultLoginRateLimit  = 5
	defaultLoginRateWindow = 15 * time.Minute
	defaultDeadlineWindow  = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env file
// in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		PortalTokenTTL:  getDuration(lookup, "PORTAL_TOKEN_TTL", defaultPortalTokenTTL),
		MailerAddress:   getString(lookup, "MAILER_ADDRESS", ""),
		MailerAPIKey:    getString(lookup, "MAILER_API_KEY", ""),
		MailFrom:        getString(lookup, "MAIL_FROM", "noreply@orderflow.local"),
		PortalBaseURL:   getString(lookup, "PORTAL_BASE_URL", "http://localhost:8080"),
		CronSecret:      getString(lookup, "CRON_SECRET", ""),
		OrderPrefix:     getString(lookup, "ORDER_PREFIX", defaultOrderPrefix),
		InvoicePrefix:   getString(lookup, "INVOICE_PREFIX", defaultInvoicePrefix),
		ProposalPrefix:  getString(lookup, "PROPOSAL_PREFIX", defaultProposalPrefix),
		LoginRateLimit:  getInt(lookup, "LOGIN_RATE_LIMIT", defaultLoginRateLimit),
		LoginRateWindow: getDuration(lookup, "LOGIN_RATE_WINDOW", defaultLoginRateWindow),
		DeadlineWindow:  getDuration(lookup, "DEADLINE_WINDOW", defaultDeadlineWindow),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", 0),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		loginWindowStr     = cfg.LoginRateWindow.String()
		deadlineWindowStr  = cfg.DeadlineWindow.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.MailerAddress, "m", cfg.MailerAddress, "Transactional mail provider base URL")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.CronSecret, "cron-secret", cfg.CronSecret, "Shared secret guarding the cron endpoint")
	fs.IntVar(&cfg.LoginRateLimit, "login-rate-limit", cfg.LoginRateLimit, "Login attempts allowed per window")
	fs.StringVar(&loginWindowStr, "login-rate-window", loginWindowStr, "Login rate limit window")
	fs.StringVar(&deadlineWindowStr, "deadline-window", deadlineWindowStr, "Deadline sweep look-ahead window")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "In-process deadline sweep interval, 0 disables")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.LoginRateWindow, err = time.ParseDuration(loginWindowStr); err != nil {
		return nil, fmt.Errorf("invalid login rate window: %w", err)
	}

	if cfg.DeadlineWindow, err = time.ParseDuration(deadlineWindowStr); err != nil {
		return nil, fmt.Errorf("invalid deadline window: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.LoginRateLimit <= 0 {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}

	if cfg.LoginRateWindow <= 0 {
		cfg.LoginRateWindow = defaultLoginRateWindow
	}

	if cfg.DeadlineWindow <= 0 {
		cfg.DeadlineWindow = defaultDeadlineWindow
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PortalTokenTTL <= 0 {
		cfg.PortalTokenTTL = defaultPortalTokenTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
