package category

import (
	"context"

	"categories-api/internal/domain"
)

// Store persists category records. Implementations own the canonical data.
type Store interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindAllPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error)
	FindAllActive(ctx context.Context) ([]domain.Category, error)
	// FindByID returns domain.ErrNotFound when no record matches.
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	// Update merges in into the stored record. Missing ids yield domain.ErrNotFound.
	Update(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error)
	// Delete is a no-op for ids that do not exist.
	Delete(ctx context.Context, id int64) error
}
