package category

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"categories-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises behavior every Store implementation must share.
// newStore must return an empty store configured with a default page size of 2.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("CreateThenFind", func(t *testing.T) {
		s := newStore(t)
		attrs := map[string]any{"name": "Books", "slug": "books"}
		created, err := s.Create(ctx, domain.CategoryInput{Status: intPtr(1), Attributes: attrs})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := s.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 1, got.Status)
		for k, v := range attrs {
			assert.Equal(t, v, got.Attributes[k], "attribute %s", k)
		}
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("CreateAssignsDistinctIDs", func(t *testing.T) {
		s := newStore(t)
		a, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "A"}})
		require.NoError(t, err)
		b, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "B"}})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("CreateDefaultsStatusActive", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "Music"}})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, c.Status)
	})

	t.Run("CreateIgnoresReservedAttributes", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"id": "999", "name": "Games"}})
		require.NoError(t, err)
		assert.NotContains(t, c.Attributes, "id")
		assert.Equal(t, "Games", c.Attributes["name"])
	})

	t.Run("UpdateIsPartial", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Create(ctx, domain.CategoryInput{Status: intPtr(1), Attributes: map[string]any{"name": "Books", "slug": "books"}})
		require.NoError(t, err)

		updated, err := s.Update(ctx, c.ID, domain.CategoryInput{Status: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Status)
		assert.Equal(t, "Books", updated.Attributes["name"])
		assert.Equal(t, "books", updated.Attributes["slug"])

		updated, err = s.Update(ctx, c.ID, domain.CategoryInput{Attributes: map[string]any{"name": "Novels"}})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Status)
		assert.Equal(t, "Novels", updated.Attributes["name"])
		assert.Equal(t, "books", updated.Attributes["slug"])
		assert.False(t, updated.UpdatedAt.Before(c.UpdatedAt))
	})

	t.Run("UpdateMissingIsNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(ctx, 424242, domain.CategoryInput{Status: intPtr(1)})
		assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	})

	t.Run("DeleteRemoves", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "Tmp"}})
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, c.ID))

		_, err = s.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("DeleteMissingIsNoop", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, 424242))
	})

	t.Run("FindAllPagedBoundsAndTotals", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 5; i++ {
			_, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": fmt.Sprintf("c%d", i)}})
			require.NoError(t, err)
		}
		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)

		page, err := s.FindAllPaged(ctx, domain.PageRequest{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, len(all), page.Total)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.LastPage)
		assert.Equal(t, 2, page.PerPage)
		assert.Equal(t, all[0].ID, page.Items[0].ID)

		last, err := s.FindAllPaged(ctx, domain.PageRequest{Page: 3, PerPage: 2})
		require.NoError(t, err)
		require.Len(t, last.Items, 1)
		assert.Equal(t, all[4].ID, last.Items[0].ID)

		beyond, err := s.FindAllPaged(ctx, domain.PageRequest{Page: 9, PerPage: 2})
		require.NoError(t, err)
		assert.Empty(t, beyond.Items)
		assert.Equal(t, 5, beyond.Total)

		wide, err := s.FindAllPaged(ctx, domain.PageRequest{PerPage: 10})
		require.NoError(t, err)
		assert.Len(t, wide.Items, 5)
		assert.Equal(t, 1, wide.LastPage)
	})

	t.Run("FindAllPagedEmpty", func(t *testing.T) {
		s := newStore(t)
		page, err := s.FindAllPaged(ctx, domain.PageRequest{})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.LastPage)
	})

	t.Run("FindAllPagedHugePageIsEmpty", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 3; i++ {
			_, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": fmt.Sprintf("c%d", i)}})
			require.NoError(t, err)
		}

		const hugePage = 100000000000000000
		page, err := s.FindAllPaged(ctx, domain.PageRequest{Page: hugePage, PerPage: 100})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, hugePage, page.CurrentPage)
		assert.Equal(t, 1, page.LastPage)
	})

	t.Run("FindAllActiveFilters", func(t *testing.T) {
		s := newStore(t)
		active, err := s.Create(ctx, domain.CategoryInput{Status: intPtr(1), Attributes: map[string]any{"name": "On"}})
		require.NoError(t, err)
		_, err = s.Create(ctx, domain.CategoryInput{Status: intPtr(0), Attributes: map[string]any{"name": "Off"}})
		require.NoError(t, err)
		_, err = s.Create(ctx, domain.CategoryInput{Status: intPtr(2), Attributes: map[string]any{"name": "Other"}})
		require.NoError(t, err)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		got, err := s.FindAllActive(ctx)
		require.NoError(t, err)

		var want []int64
		for _, c := range all {
			if c.Status == 1 {
				want = append(want, c.ID)
			}
		}
		var ids []int64
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, want, ids)
		assert.Equal(t, []int64{active.ID}, ids)
	})

	t.Run("ExampleScenario", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Create(ctx, domain.CategoryInput{Status: intPtr(1), Attributes: map[string]any{"name": "Books"}})
		require.NoError(t, err)

		updated, err := s.Update(ctx, c.ID, domain.CategoryInput{Status: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, c.ID, updated.ID)
		assert.Equal(t, "Books", updated.Attributes["name"])
		assert.Equal(t, 0, updated.Status)

		active, err := s.FindAllActive(ctx)
		require.NoError(t, err)
		for _, a := range active {
			assert.NotEqual(t, c.ID, a.ID)
		}

		require.NoError(t, s.Delete(ctx, c.ID))
		_, err = s.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func intPtr(v int) *int {
	return &v
}
