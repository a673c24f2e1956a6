package ui

import "stt/internal/domain"

// Viewer displays run failures in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
