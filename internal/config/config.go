package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	TargetURL      string
	InputSelector  string
	OutputSelector string

	// Fixture and output settings
	FixtureFile    string
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers  int
	Retries  int
	Headless bool

	// Timing settings
	CharDelay       time.Duration
	PollTimeout     time.Duration
	PollInterval    time.Duration
	NavigateTimeout time.Duration

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers       int
	Filter        string
	FixtureFile   string
	TargetURL     string
	Headed        bool
	TimeoutSec    int
	RunTimeoutSec int
	Retries       int
	CharDelayMs   int
	FailFast      bool
	OnlyFailed    bool
	RerunFailures bool
	OpenFails     bool
	LongListing   bool
}

// New creates a new Config with defaults, then applies .env/environment
// overrides (a missing .env file is fine).
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TargetURL:       DefaultTargetURL,
		InputSelector:   DefaultInputSelector,
		OutputSelector:  DefaultOutputSelector,
		FixtureFile:     DefaultFixtureFile,
		OutputJSONFile:  DefaultOutputJSONFile,
		OutputJSONDir:   DefaultOutputJSONDir,
		Workers:         DefaultWorkers,
		Retries:         DefaultRetries,
		Headless:        true,
		CharDelay:       DefaultCharDelay,
		PollTimeout:     DefaultPollTimeout,
		PollInterval:    DefaultPollInterval,
		NavigateTimeout: DefaultNavigateTimeout,
		Flags:           Flags{Workers: DefaultWorkers},
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STT_URL"); v != "" {
		c.TargetURL = v
	}
	if v := os.Getenv("STT_INPUT_SELECTOR"); v != "" {
		c.InputSelector = v
	}
	if v := os.Getenv("STT_OUTPUT_SELECTOR"); v != "" {
		c.OutputSelector = v
	}
	if v := os.Getenv("STT_FIXTURE_FILE"); v != "" {
		c.FixtureFile = v
	}
	if v := os.Getenv("STT_CHAR_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.CharDelay = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("STT_TIMEOUT_S"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			c.PollTimeout = time.Duration(s) * time.Second
		}
	}
	if v := os.Getenv("STT_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Headless = b
		}
	}
}

// ApplyFlags applies parsed command flags over the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Retries >= 0 {
		c.Retries = flags.Retries
	}
	if flags.TargetURL != "" {
		c.TargetURL = flags.TargetURL
	}
	if flags.FixtureFile != "" {
		c.FixtureFile = flags.FixtureFile
	}
	if flags.TimeoutSec > 0 {
		c.PollTimeout = time.Duration(flags.TimeoutSec) * time.Second
	}
	if flags.CharDelayMs > 0 {
		c.CharDelay = time.Duration(flags.CharDelayMs) * time.Millisecond
	}
	if flags.Headed {
		c.Headless = false
	}
}

// GetFixturePath returns the fixture file path, using the flag if provided
func (c *Config) GetFixturePath() string {
	if c.Flags.FixtureFile != "" {
		return c.Flags.FixtureFile
	}
	return c.FixtureFile
}

// GetOutputPath returns the full path to the results JSON file. Resolves to
// an absolute path so run and fails always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
