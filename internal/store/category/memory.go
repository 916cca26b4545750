package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"categories-api/internal/domain"
)

type memoryStore struct {
	mu             sync.RWMutex
	nextID         int64
	records        map[int64]domain.Category
	defaultPerPage int
	now            func() time.Time
}

// NewMemory returns a Store that keeps records in process memory.
func NewMemory(defaultPerPage int) Store {
	return &memoryStore{
		records:        make(map[int64]domain.Category),
		defaultPerPage: defaultPerPage,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *memoryStore) FindAll(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(nil), nil
}

func (s *memoryStore) FindAllPaged(_ context.Context, req domain.PageRequest) (domain.Page[domain.Category], error) {
	req = req.Normalize(s.defaultPerPage)

	s.mu.RLock()
	all := s.sorted(nil)
	s.mu.RUnlock()

	start := min(max(req.Offset(), 0), len(all))
	end := start + min(req.PerPage, len(all)-start)
	return domain.NewPage(all[start:end], len(all), req), nil
}

func (s *memoryStore) FindAllActive(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(c domain.Category) bool { return c.Active() }), nil
}

func (s *memoryStore) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := c.Clone()
	return &out, nil
}

func (s *memoryStore) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	c := domain.Category{
		ID:         s.nextID,
		Status:     domain.StatusActive,
		Attributes: domain.MergeAttributes(nil, in.Attributes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	s.records[c.ID] = c

	out := c.Clone()
	return &out, nil
}

func (s *memoryStore) Update(_ context.Context, id int64, in domain.CategoryInput) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Attributes = domain.MergeAttributes(c.Attributes, in.Attributes)
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = s.now()
	s.records[id] = c

	out := c.Clone()
	return &out, nil
}

func (s *memoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// sorted returns cloned records matching keep (all when nil) in id order.
// Callers must hold s.mu.
func (s *memoryStore) sorted(keep func(domain.Category) bool) []domain.Category {
	out := make([]domain.Category, 0, len(s.records))
	for _, c := range s.records {
		if keep != nil && !keep(c) {
			continue
		}
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
