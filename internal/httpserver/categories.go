package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"categories-api/internal/domain"
	categoryrepo "categories-api/internal/repository/category"
	"github.com/gin-gonic/gin"
)

type categoryController struct {
	repo categoryrepo.Repository
}

func newCategoryController(repo categoryrepo.Repository) *categoryController {
	return &categoryController{repo: repo}
}

type listQuery struct {
	Page    int  `form:"page" binding:"omitempty,min=1"`
	PerPage int  `form:"per_page" binding:"omitempty,min=1,max=100"`
	Active  bool `form:"active"`
	All     bool `form:"all"`
}

type listResponse struct {
	Data []categoryResource `json:"data"`
	Meta *pageMeta          `json:"meta,omitempty"`
}

type itemResponse struct {
	Data categoryResource `json:"data"`
}

// List returns a page of categories, or every (active) category when
// all/active is requested.
func (h *categoryController) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	switch {
	case q.Active:
		items, err := h.repo.GetAllActiveCategories(ctx)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, listResponse{Data: toCategoryCollection(items)})
	case q.All:
		items, err := h.repo.GetAllCategories(ctx)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, listResponse{Data: toCategoryCollection(items)})
	default:
		page, err := h.repo.GetAllCategoriesPaged(ctx, domain.PageRequest{Page: q.Page, PerPage: q.PerPage})
		if err != nil {
			renderError(c, err)
			return
		}
		meta := toPageMeta(page)
		c.JSON(http.StatusOK, listResponse{Data: toCategoryCollection(page.Items), Meta: &meta})
	}
}

func (h *categoryController) Create(c *gin.Context) {
	in, err := bindCategoryInput(c)
	if err != nil {
		renderError(c, err)
		return
	}
	created, err := h.repo.CreateCategory(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemResponse{Data: toCategoryResource(*created)})
}

func (h *categoryController) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.repo.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemResponse{Data: toCategoryResource(*category)})
}

func (h *categoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, err := bindCategoryInput(c)
	if err != nil {
		renderError(c, err)
		return
	}
	updated, err := h.repo.UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemResponse{Data: toCategoryResource(*updated)})
}

// Delete always answers 204 for a well-formed id, whether or not it existed.
func (h *categoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteCategory(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid category id")
		return 0, false
	}
	return id, true
}

// bindCategoryInput reads the body as a JSON object. An empty body is an
// empty attribute set.
func bindCategoryInput(c *gin.Context) (domain.CategoryInput, error) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return domain.CategoryInput{}, fmt.Errorf("%w: body must be a JSON object", domain.ErrInvalidInput)
	}
	return categoryInputFromBody(body)
}

func categoryInputFromBody(body map[string]any) (domain.CategoryInput, error) {
	in := domain.CategoryInput{Attributes: domain.CleanAttributes(body)}
	raw, ok := body["status"]
	if !ok || raw == nil {
		return in, nil
	}
	status, err := parseStatus(raw)
	if err != nil {
		return domain.CategoryInput{}, err
	}
	in.Status = &status
	return in, nil
}

func parseStatus(raw any) (int, error) {
	invalid := fmt.Errorf("%w: status must be an integer", domain.ErrInvalidInput)
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, invalid
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, invalid
		}
		return int(n), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, invalid
		}
		return int(n), nil
	default:
		return 0, invalid
	}
}
