package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rdevrajsinh/totalenc/internal/middleware"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Health   *HealthHandler
	Blogs    *BlogHandler
	Products *ProductHandler
	Services *ServiceHandler
	Contact  *ContactHandler
	Media    *MediaHandler
	Comments *CommentHandler
	Users    *UserHandler
}

// NewRouter builds the gin engine: operational probes and metrics at the
// root, the content API under /api and uploaded files under /uploads.
func NewRouter(h Handlers, uploadDir string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	h.Health.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/uploads", uploadDir)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.API)
		h.Blogs.Register(api)
		h.Products.Register(api)
		h.Services.Register(api)
		h.Contact.Register(api)
		h.Media.Register(api)
		h.Comments.Register(api)
		h.Users.Register(api)
	}

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "Not found")
	})

	return router
}
