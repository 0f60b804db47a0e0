package routes

import (
	"skillbridge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	recommendation *handler.RecommendationHandler
}

func NewRegistry(recommendation *handler.RecommendationHandler) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(),
		recommendation: recommendation,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.recommendation.RegisterRoutes(v1)
}
