package domain

import (
	"maps"
	"time"
)

// StatusActive marks a category as visible in active listings.
const StatusActive = 1

// Keys the store owns. Callers cannot write them through attributes.
var reservedKeys = map[string]struct{}{
	"id":         {},
	"status":     {},
	"created_at": {},
	"updated_at": {},
}

type Category struct {
	ID         int64          `json:"id"`
	Status     int            `json:"status"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Active reports whether the category passes the active filter.
func (c Category) Active() bool {
	return c.Status == StatusActive
}

// Clone returns a copy that shares no attribute map with c.
func (c Category) Clone() Category {
	out := c
	out.Attributes = cloneAttributes(c.Attributes)
	return out
}

// CategoryInput carries caller-supplied fields for create and partial update.
// A nil Status leaves the stored status untouched on update.
type CategoryInput struct {
	Status     *int
	Attributes map[string]any
}

// IsReservedKey reports whether key is managed by the store.
func IsReservedKey(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// CleanAttributes drops reserved keys and returns a fresh map.
func CleanAttributes(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if IsReservedKey(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func cloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAttributes(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

// MergeAttributes overlays patch onto base without mutating either.
func MergeAttributes(base, patch map[string]any) map[string]any {
	out := cloneAttributes(base)
	maps.Copy(out, CleanAttributes(patch))
	return out
}
