package httpserver

import (
	"net/http"
	"slices"
	"time"

	"categories-api/internal/logger"
	categoryrepo "categories-api/internal/repository/category"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps carries the collaborators the HTTP layer needs.
type Deps struct {
	CategoryRepo categoryrepo.Repository
	// DB is pinged by /readyz. Nil means the service runs without a database.
	DB Pinger
}

// Options configures router-level behavior.
type Options struct {
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(log *zerolog.Logger, deps Deps, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(logger.OrNop(log)), gin.Recovery())
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	categories := newCategoryController(deps.CategoryRepo)
	group := router.Group("/categories")
	{
		group.GET("", categories.List)
		group.POST("", categories.Create)
		group.GET("/:id", categories.Show)
		group.PUT("/:id", categories.Update)
		group.PATCH("/:id", categories.Update)
		group.DELETE("/:id", categories.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "route not found")
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
