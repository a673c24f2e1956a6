package config

import "time"

const (
	// DefaultTargetURL is the translator page under test
	DefaultTargetURL = "https://www.easysinhalaunicode.com"
	// DefaultInputSelector locates the Singlish input surface
	DefaultInputSelector = `textarea[placeholder="Type in Singlish"]`
	// DefaultOutputSelector locates the rendered Sinhala output region
	DefaultOutputSelector = "div.sinhala-output"
	// DefaultFixtureFile is the default fixture path
	DefaultFixtureFile = "fixtures/cases.json"
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default results directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of parallel cases; each worker
	// owns a live browser, so the default stays low
	DefaultWorkers = 2
	// DefaultRetries is the default number of session-error retries per case
	DefaultRetries = 1
)

const (
	// DefaultCharDelay is the pause between typed characters. The reference
	// deployment settled on 150ms; slower machines may need more.
	DefaultCharDelay = 150 * time.Millisecond
	// DefaultPollTimeout bounds the wait for converted output. Generous
	// because conversion latency is server and network dependent.
	DefaultPollTimeout = 25 * time.Second
	// DefaultPollInterval is the output sampling interval
	DefaultPollInterval = 250 * time.Millisecond
	// DefaultNavigateTimeout bounds the initial page load
	DefaultNavigateTimeout = 30 * time.Second
)
