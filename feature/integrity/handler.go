package integrity

import (
	"errors"

	"pokepc-dataset/core/logger"
	"pokepc-dataset/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/indices", h.HandleIndicesCheck)
	group.Get("/uniqueness", h.HandleUniquenessCheck)
	group.Get("/references", h.HandleReferencesCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the structure, indices, uniqueness and reference checks concurrently.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.RunAll(c.Context())
	l.Info("Integrity checks completed", zap.Bool("ok", report.OK))
	return c.JSON(report)
}

// HandleStructureCheck checks that every required document exists.
// @Summary Check Structure
// @Description Lists the flat collection files and index documents missing from the dataset.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStructure()
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Missing) > 0 {
		l.Warn("Missing documents detected", zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleIndicesCheck reconciles indices with shards and optionally fixes them.
// @Summary Check Indices
// @Description Compares every index document with the shard documents present. With fix=true the indices are rewritten.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Rewrite inconsistent indices"
// @Success 200 {object} map[string]interface{} "Index Plans"
// @Failure 403 {object} map[string]string "Read-only"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/indices [get]
func (h *Handler) HandleIndicesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if utils.ToBool(c.Query("fix")) {
		l.Info("Attempting to fix indices")
		plans, executed, err := h.service.FixIndices(c.Context())
		if err != nil {
			if errors.Is(err, ErrReadOnly) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
			}
			l.Error("Index fix failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "fixed", "executed": executed, "plans": plans})
	}

	plans, err := h.service.CheckIndices(c.Context())
	if err != nil {
		l.Error("Index check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "checked", "plans": plans})
}

// HandleUniquenessCheck checks primary keys and game name slugs.
// @Summary Check Uniqueness
// @Description Reports duplicate or malformed ids in every collection and duplicate game name slugs.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.Report "Uniqueness Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/uniqueness [get]
func (h *Handler) HandleUniquenessCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckUniqueness()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Uniqueness check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleReferencesCheck checks cross-collection references.
// @Summary Check References
// @Description Reports pokemon, pokedex and game references that do not resolve.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.Report "Reference Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/references [get]
func (h *Handler) HandleReferencesCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckReferences()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Reference check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
