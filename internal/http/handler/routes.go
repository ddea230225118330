package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boardapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, boardSvc service.BoardService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	posts := app.Group("/posts")
	posts.Get("/", ListPosts(boardSvc))
	posts.Post("/", WritePost(boardSvc))
	posts.Get("/:id", GetPost(boardSvc))
	posts.Put("/:id", ModifyPost(boardSvc))
	posts.Delete("/:id", DeletePost(boardSvc))
	posts.Post("/:id/replies", ReplyPost(boardSvc))
}

// MetricsHandler exposes the Prometheus registry g on a Fiber route.
func MetricsHandler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
