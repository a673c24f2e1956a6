package cli

import "stt/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers       int
	Filter        string
	Fixture       string
	URL           string
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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:       f.Workers,
		Filter:        f.Filter,
		FixtureFile:   f.Fixture,
		TargetURL:     f.URL,
		Headed:        f.Headed,
		TimeoutSec:    f.TimeoutSec,
		RunTimeoutSec: f.RunTimeoutSec,
		Retries:       f.Retries,
		CharDelayMs:   f.CharDelayMs,
		FailFast:      f.FailFast,
		OnlyFailed:    f.OnlyFailed,
		RerunFailures: f.RerunFailures,
		OpenFails:     f.OpenFails,
		LongListing:   f.LongListing,
	}
}
