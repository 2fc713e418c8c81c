package ports

import (
	"context"

	"journey-route-service/internal/domain"
)

// Contract for loading journal entries from a content tree.
// Implementations return entries sorted ascending by date.
type EntryLoader interface {
	LoadEntries(ctx context.Context) ([]domain.Entry, error)
}
