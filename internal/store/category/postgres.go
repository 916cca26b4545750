package category

import (
	"context"
	"errors"

	"categories-api/internal/domain"
	"categories-api/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const selectColumns = `id, status, attributes, created_at, updated_at`

type postgresStore struct {
	pool           *pgxpool.Pool
	logger         *zerolog.Logger
	defaultPerPage int
}

// NewPostgres returns a Store backed by the categories table.
func NewPostgres(pool *pgxpool.Pool, log *zerolog.Logger, defaultPerPage int) Store {
	return &postgresStore{pool: pool, logger: logger.OrNop(log), defaultPerPage: defaultPerPage}
}

func (s *postgresStore) FindAll(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT ` + selectColumns + ` FROM categories ORDER BY id ASC`
	result, err := s.queryList(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Msg("category store: find all")
		return nil, err
	}
	s.logger.Debug().Int("count", len(result)).Msg("category store: find all")
	return result, nil
}

func (s *postgresStore) FindAllPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error) {
	req = req.Normalize(s.defaultPerPage)

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		s.logger.Error().Err(err).Msg("category store: count")
		return domain.Page[domain.Category]{}, err
	}

	const q = `SELECT ` + selectColumns + ` FROM categories ORDER BY id ASC LIMIT $1 OFFSET $2`
	items, err := s.queryList(ctx, q, req.PerPage, req.Offset())
	if err != nil {
		s.logger.Error().Err(err).Int("page", req.Page).Int("per_page", req.PerPage).Msg("category store: find page")
		return domain.Page[domain.Category]{}, err
	}
	s.logger.Debug().Int("page", req.Page).Int("per_page", req.PerPage).Int("total", total).Msg("category store: find page")
	return domain.NewPage(items, total, req), nil
}

func (s *postgresStore) FindAllActive(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT ` + selectColumns + ` FROM categories WHERE status = $1 ORDER BY id ASC`
	result, err := s.queryList(ctx, q, domain.StatusActive)
	if err != nil {
		s.logger.Error().Err(err).Msg("category store: find active")
		return nil, err
	}
	return result, nil
}

func (s *postgresStore) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `SELECT ` + selectColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Int64("id", id).Msg("category store: not found")
			return nil, domain.ErrNotFound
		}
		s.logger.Error().Err(err).Int64("id", id).Msg("category store: find by id")
		return nil, err
	}
	return c, nil
}

func (s *postgresStore) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	const q = `
INSERT INTO categories (status, attributes)
VALUES (COALESCE($1, 1), COALESCE($2::jsonb, '{}'::jsonb))
RETURNING ` + selectColumns
	c, err := scanCategory(s.pool.QueryRow(ctx, q, in.Status, domain.CleanAttributes(in.Attributes)))
	if err != nil {
		s.logger.Error().Err(err).Msg("category store: create")
		return nil, err
	}
	s.logger.Info().Int64("id", c.ID).Msg("category store: created")
	return c, nil
}

func (s *postgresStore) Update(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error) {
	const q = `
UPDATE categories
SET status = COALESCE($2, status),
    attributes = attributes || COALESCE($3::jsonb, '{}'::jsonb),
    updated_at = now()
WHERE id = $1
RETURNING ` + selectColumns
	c, err := scanCategory(s.pool.QueryRow(ctx, q, id, in.Status, domain.CleanAttributes(in.Attributes)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Int64("id", id).Msg("category store: update not found")
			return nil, domain.ErrNotFound
		}
		s.logger.Error().Err(err).Int64("id", id).Msg("category store: update")
		return nil, err
	}
	s.logger.Info().Int64("id", id).Msg("category store: updated")
	return c, nil
}

func (s *postgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("category store: delete")
		return err
	}
	s.logger.Info().Int64("id", id).Int64("rows", tag.RowsAffected()).Msg("category store: deleted")
	return nil
}

func (s *postgresStore) queryList(ctx context.Context, q string, args ...any) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Status, &c.Attributes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if c.Attributes == nil {
		c.Attributes = map[string]any{}
	}
	return &c, nil
}
