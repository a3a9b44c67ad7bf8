package pokemon

import (
	"pokepc-dataset/core/metrics"
	"pokepc-dataset/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the pokemon feature.
func NewFeature(cat *catalog.Catalog, m *metrics.Metrics, logger *zap.Logger) *Feature {
	svc := NewService(cat, m, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pokemon"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the pokemon service.
func (f *Feature) Service() *Service {
	return f.service
}
