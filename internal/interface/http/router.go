package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/hireup-faq/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger, cfg.FAQ.Path),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, cfg.FAQ.Path)
	})

	pages := router.Group(cfg.FAQ.Path, sessionMiddleware(cfg.FAQ.Session))
	{
		pages.GET("", handler.Page)
		pages.POST("/search", handler.SubmitSearch)
		pages.POST("/items/:id/toggle", handler.Toggle)
		pages.POST("/toggle-all", handler.ToggleAll)
	}

	api := router.Group("/api/v1", corsMiddleware(cfg.HTTP.AllowedOrigins))
	{
		api.GET("/faqs", handler.ListFAQs)
		api.OPTIONS("/faqs", func(c *gin.Context) {})
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
