package category

import (
	"context"

	"categories-api/internal/domain"
)

// Repository is the boundary the HTTP layer talks to. It hides which Store
// backs the data.
type Repository interface {
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	GetAllCategoriesPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error)
	GetAllActiveCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
