package storage

import (
	"time"

	"stt/internal/config"
	"stt/internal/domain"
)

// Storage persists and loads suite run results (for the fails viewer and
// failed-only reruns).
type Storage interface {
	Save(results []domain.CaseResult, duration time.Duration, workers int) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-flag updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
