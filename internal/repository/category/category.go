package category

import (
	"context"

	"categories-api/internal/domain"
	"categories-api/internal/logger"
	store "categories-api/internal/store/category"
	"github.com/rs/zerolog"
)

type repo struct {
	store  store.Store
	logger *zerolog.Logger
}

// New wraps s. The returned Repository holds no state of its own.
func New(s store.Store, log *zerolog.Logger) Repository {
	return &repo{store: s, logger: logger.OrNop(log)}
}

func (r *repo) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return r.store.FindAll(ctx)
}

func (r *repo) GetAllCategoriesPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error) {
	return r.store.FindAllPaged(ctx, req)
}

func (r *repo) GetAllActiveCategories(ctx context.Context) ([]domain.Category, error) {
	return r.store.FindAllActive(ctx)
}

func (r *repo) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repo) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	c, err := r.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Int64("id", c.ID).Msg("category repository: created")
	return c, nil
}

func (r *repo) UpdateCategory(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error) {
	return r.store.Update(ctx, id, in)
}

func (r *repo) DeleteCategory(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.logger.Debug().Int64("id", id).Msg("category repository: deleted")
	return nil
}
