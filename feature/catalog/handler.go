package catalog

import (
	"errors"

	"pokepc-dataset/core/logger"
	"pokepc-dataset/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog collections.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleCollections)
	group.Get("/gamesets", h.HandleGameSets)
	group.Get("/boxpresets/:variant", h.HandleBoxPresets)
	group.Post("/indices/pokemon", h.HandleRegeneratePokemonIndex)
	group.Get("/:collection", h.HandleList)
	group.Get("/:collection/:id", h.HandleGet)
}

// HandleCollections lists the collection names.
// @Summary List Collections
// @Description Returns the name of every collection served by the catalog.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /catalog [get]
func (h *Handler) HandleCollections(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"collections": h.service.Collections()})
}

// HandleList returns every record of a collection.
// @Summary List Records
// @Description Returns every record of a collection in dataset order.
// @Tags catalog
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Unknown collection"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /catalog/{collection} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	name := c.Params("collection")
	records, err := h.service.List(name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"collection": name, "total": len(records), "records": records})
}

// HandleGet returns one record.
// @Summary Get Record
// @Description Returns one record of a collection by primary key.
// @Tags catalog
// @Produce json
// @Param collection path string true "Collection name"
// @Param id path string true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /catalog/{collection}/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	name, id := c.Params("collection"), c.Params("id")
	record, ok, err := h.service.Get(name, id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": name + " " + id + " not found"})
	}
	return c.JSON(record)
}

// HandleGameSets returns the top-level game sets.
// @Summary List Game Sets
// @Description Returns games of type "set" and standalone games, with generated descriptions.
// @Tags catalog
// @Produce json
// @Success 200 {array} GameSummary
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /catalog/gamesets [get]
func (h *Handler) HandleGameSets(c *fiber.Ctx) error {
	sets, err := h.service.GameSets()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sets)
}

// HandleBoxPresets returns the legacy box presets of a variant.
// @Summary List Box Presets
// @Description Returns legacy box presets grouped by game set. Game sets without presets are omitted.
// @Tags catalog
// @Produce json
// @Param variant path string true "classic or modern"
// @Success 200 {array} models.BoxPresetGroup
// @Failure 400 {object} map[string]string "Unknown variant"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /catalog/boxpresets/{variant} [get]
func (h *Handler) HandleBoxPresets(c *fiber.Ctx) error {
	variant := c.Params("variant")
	if !models.IsVariant(variant) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "variant must be classic or modern"})
	}
	groups, err := h.service.BoxPresets(variant)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(groups)
}

// HandleRegeneratePokemonIndex rewrites indices/pokemon.json.
// @Summary Regenerate Pokemon Index
// @Description Rebuilds the pokemon index from the loaded pokemon and their forms.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Read-only"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /catalog/indices/pokemon [post]
func (h *Handler) HandleRegeneratePokemonIndex(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	index, err := h.service.RegeneratePokemonIndex()
	if err != nil {
		if errors.Is(err, ErrReadOnly) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Pokemon index regeneration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "regenerated", "total": len(index), "index": index})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrUnknownCollection) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.logger, c).Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
