package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name   string
	Slug   string
	Status int
}

var categories = []categorySeed{
	{Name: "Books", Slug: "books", Status: 1},
	{Name: "Music", Slug: "music", Status: 1},
	{Name: "Archive", Slug: "archive", Status: 0},
}

// Apply inserts demo categories for manual testing. Rows are matched by slug,
// so running it twice does not duplicate them.
func Apply(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	inserted := 0
	for _, c := range categories {
		ok, err := insertCategory(ctx, pool, c)
		if err != nil {
			return inserted, fmt.Errorf("insert category %s: %w", c.Slug, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func insertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (bool, error) {
	const q = `
INSERT INTO categories (status, attributes)
SELECT $1::int, jsonb_build_object('name', $2::text, 'slug', $3::text)
WHERE NOT EXISTS (SELECT 1 FROM categories WHERE attributes->>'slug' = $3::text)
`
	tag, err := pool.Exec(ctx, q, c.Status, c.Name, c.Slug)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
