package repository

import (
	"context"
	"errors"

	"planshop/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DraftRepo persists workshop drafts.
type DraftRepo interface {
	// Save upserts a draft by name; the stored ID and timestamps are
	// written back into d.
	Save(ctx context.Context, d *domain.Draft) error
	GetByName(ctx context.Context, name string) (*domain.Draft, error)
	// GetLatest returns the most recently updated draft.
	GetLatest(ctx context.Context) (*domain.Draft, error)
	List(ctx context.Context) ([]*domain.Draft, error)
	Delete(ctx context.Context, name string) error
}
