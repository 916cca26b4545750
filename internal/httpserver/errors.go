package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"categories-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// errorCode turns a status into a stable machine code, e.g. 404 -> NOT_FOUND.
func errorCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: apiError{Code: errorCode(status), Message: message}})
}

// renderError maps domain errors to responses. Unknown errors are logged and
// hidden behind a generic 500.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "category not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		requestLogger(c).Error().Err(err).Msg("request failed")
		writeError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
