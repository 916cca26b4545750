package httpserver

import (
	"time"

	"categories-api/internal/domain"
)

type categoryResource map[string]any

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// toCategoryResource flattens attributes into the top level. Store-owned
// fields are written last so attributes can never shadow them.
func toCategoryResource(c domain.Category) categoryResource {
	out := make(categoryResource, len(c.Attributes)+4)
	for k, v := range c.Attributes {
		out[k] = v
	}
	out["id"] = c.ID
	out["status"] = c.Status
	out["created_at"] = c.CreatedAt.UTC().Format(time.RFC3339)
	out["updated_at"] = c.UpdatedAt.UTC().Format(time.RFC3339)
	return out
}

func toCategoryCollection(items []domain.Category) []categoryResource {
	out := make([]categoryResource, 0, len(items))
	for _, c := range items {
		out = append(out, toCategoryResource(c))
	}
	return out
}

func toPageMeta(p domain.Page[domain.Category]) pageMeta {
	return pageMeta{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}
