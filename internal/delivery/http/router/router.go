package router

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handlers struct {
	Page *handlers.PageHandler
	API  *handlers.APIHandler
	// Gatherer backs /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
}

func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func New(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())
	r.SetHTMLTemplate(Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))
	}

	r.GET("/order/:orderId", h.Page.Entry)
	r.GET("/pickup/:orderId", h.Page.Entry)
	r.POST("/pickup/:orderId", h.Page.Pickup)

	api := r.Group("/api")
	{
		api.GET("/items/:orderId", h.API.GetItem)
		api.POST("/support/message", h.API.PostMessage)
		api.GET("/support/:orderId", h.API.GetThread)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}
