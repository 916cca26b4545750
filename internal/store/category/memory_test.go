package category

import (
	"context"
	"sync"
	"testing"

	"categories-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store {
		return NewMemory(2)
	})
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(10)
	c, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "Books"}})
	require.NoError(t, err)

	c.Attributes["name"] = "mutated"
	got, err := s.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Attributes["name"])

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	all[0].Attributes["name"] = "mutated"
	got, err = s.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Attributes["name"])
}

func TestMemory_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, domain.CategoryInput{Attributes: map[string]any{"name": "x"}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	seen := map[int64]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}
