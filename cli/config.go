package main

import (
	"io"
	"os"
	"time"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl/admingate"
	"github.com/UnnaturalLog5/ballotbox/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

const envPrefix = "BALLOTBOX_"

// flag names
const (
	flagRoster          = "roster"
	flagAdminUser       = "admin-user"
	flagAdminPassword   = "admin-password"
	flagAdminHash       = "admin-password-hash"
	flagMaxAuthAttempts = "max-auth-attempts"
	flagLockout         = "lockout"
	flagStateFile       = "state-file"
	flagResultsFile     = "results-file"
	flagFormat          = "format"
	flagLogLevel        = "log-level"
	flagLogFile         = "log-file"
)

func env(name string) []string {
	return []string{envPrefix + name}
}

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    flagRoster,
		Usage:   "YAML roster of voters and candidates, the built-in roster if empty",
		EnvVars: env("ROSTER"),
	},
	&cli.StringFlag{
		Name:    flagAdminUser,
		Value:   "admin",
		Usage:   "admin username",
		EnvVars: env("ADMIN_USER"),
	},
	&cli.StringFlag{
		Name:    flagAdminPassword,
		Usage:   "admin password, hashed at startup (prefer --admin-password-hash)",
		EnvVars: env("ADMIN_PASSWORD"),
	},
	&cli.StringFlag{
		Name:    flagAdminHash,
		Usage:   "bcrypt hash of the admin password, see the hash-password command",
		EnvVars: env("ADMIN_PASSWORD_HASH"),
	},
	&cli.IntFlag{
		Name:    flagMaxAuthAttempts,
		Value:   0,
		Usage:   "failed authentications before a voter is locked out, 0 for unlimited",
		EnvVars: env("MAX_AUTH_ATTEMPTS"),
	},
	&cli.DurationFlag{
		Name:    flagLockout,
		Value:   0,
		Usage:   "how long a locked out voter waits, 0 to keep the lock",
		EnvVars: env("LOCKOUT"),
	},
	&cli.StringFlag{
		Name:    flagStateFile,
		Value:   "election_state.txt",
		Usage:   "file written by \"Save election state\"",
		EnvVars: env("STATE_FILE"),
	},
	&cli.StringFlag{
		Name:    flagResultsFile,
		Value:   "results.txt",
		Usage:   "file receiving the final results, empty to disable",
		EnvVars: env("RESULTS_FILE"),
	},
	&cli.StringFlag{
		Name:    flagFormat,
		Value:   report.FormatText,
		Usage:   "report format: text or yaml",
		EnvVars: env("FORMAT"),
	},
	&cli.StringFlag{
		Name:    flagLogLevel,
		Value:   "warn",
		Usage:   "log level (debug, info, warn, error, disabled)",
		EnvVars: env("LOG_LEVEL"),
	},
	&cli.StringFlag{
		Name:    flagLogFile,
		Usage:   "write logs to this file instead of stderr",
		EnvVars: env("LOG_FILE"),
	},
}

// loadEnvFile loads BALLOTBOX_ENV_FILE, or .env, into the environment. A
// missing file is not an error, values already set are kept.
func loadEnvFile() {
	path := os.Getenv(envPrefix + "ENV_FILE")
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("no env file loaded")
	}
}

// Config is the resolved command line configuration
type Config struct {
	Roster          string
	AdminUser       string
	AdminPassword   string
	AdminHash       string
	MaxAuthAttempts int
	Lockout         time.Duration
	StateFile       string
	ResultsFile     string
	Format          string
	LogLevel        string
	LogFile         string
}

func configFromContext(c *cli.Context) Config {
	return Config{
		Roster:          c.String(flagRoster),
		AdminUser:       c.String(flagAdminUser),
		AdminPassword:   c.String(flagAdminPassword),
		AdminHash:       c.String(flagAdminHash),
		MaxAuthAttempts: c.Int(flagMaxAuthAttempts),
		Lockout:         c.Duration(flagLockout),
		StateFile:       c.String(flagStateFile),
		ResultsFile:     c.String(flagResultsFile),
		Format:          c.String(flagFormat),
		LogLevel:        c.String(flagLogLevel),
		LogFile:         c.String(flagLogFile),
	}
}

// Validate checks the values that can't be expressed by flag types
func (c Config) Validate() error {
	if c.MaxAuthAttempts < 0 {
		return xerrors.Errorf("--%s must not be negative", flagMaxAuthAttempts)
	}
	if c.Lockout < 0 {
		return xerrors.Errorf("--%s must not be negative", flagLockout)
	}
	if c.Format != report.FormatText && c.Format != report.FormatYAML {
		return xerrors.Errorf("unknown report format %q", c.Format)
	}

	_, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return xerrors.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Election returns the engine configuration
func (c Config) Election() election.Configuration {
	return election.Configuration{
		MaxAuthAttempts: c.MaxAuthAttempts,
		LockoutDuration: c.Lockout,
	}
}

// Gate builds the admin gate. A hash takes precedence over a plain password.
func (c Config) Gate() (*admingate.Gate, error) {
	if c.AdminHash != "" {
		return admingate.New(c.AdminUser, c.AdminHash)
	}

	return admingate.NewFromPassword(c.AdminUser, c.AdminPassword, 0)
}

// setupLogging configures the global zerolog logger. The returned closer
// releases the log file, if any.
func setupLogging(c Config, stderr io.Writer) (io.Closer, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, xerrors.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if c.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339})
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, xerrors.Errorf("failed to open log file: %w", err)
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
