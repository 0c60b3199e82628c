package ui

import "unittest/internal/domain"

// Viewer displays run results
type Viewer interface {
	View(summary *domain.RunSummary) error
}
