package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/config"
)

// NewApp builds the HTTP application with all routes registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type," + requestIdHeader,
	}))

	handler := NewSchedulerHandlerImpl(cfg)
	Register(app, handler)
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Get("/processes/:count", handler.GenerateProcesses)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/:algorithm", handler.ScheduleAlgorithm)
	}

	// unversioned routes used by the original web frontend
	api.Get("/processes/:count", handler.GenerateProcesses)
	api.Post("/schedule", handler.Schedule)
}
