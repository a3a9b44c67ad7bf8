package pokemon

import (
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/core/logger"
	"pokepc-dataset/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Details is a pokemon with its generated description and possible genders.
type Details struct {
	Pokemon     Translated `json:"pokemon"`
	Description string     `json:"description"`
	Genders     []Gender   `json:"genders"`
}

// Handler handles HTTP requests for pokemon.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the pokemon routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pokemon")
	group.Get("/", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/name", h.HandleName)
}

// HandleSearch searches pokemon.
// @Summary Search Pokemon
// @Description Filters translated pokemon by free text, generation, color, type and form inclusion. Queries shorter than two characters return every pokemon with meta.skipped set, unless q is empty and gen, color or type is given, in which case those filter alone.
// @Tags pokemon
// @Produce json
// @Param q query string false "Free-text query"
// @Param gen query int false "Species generation"
// @Param lang query string false "Language code or tag" default(eng)
// @Param color query string false "Color id"
// @Param type query string false "Type id"
// @Param forms query bool false "Include forms"
// @Param shiny query bool false "Accepted, not applied"
// @Success 200 {object} Result
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /pokemon [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	res, err := h.service.Search(parseFilter(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleGet returns one pokemon.
// @Summary Get Pokemon
// @Description Returns one translated pokemon with its description and possible genders.
// @Tags pokemon
// @Produce json
// @Param id path string true "Pokemon id"
// @Param lang query string false "Language code or tag" default(eng)
// @Success 200 {object} Details
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /pokemon/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	lang := i18n.Resolve(c.Query("lang"))
	p, ok, err := h.service.Get(c.Params("id"), lang)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "pokemon " + c.Params("id") + " not found"})
	}
	return c.JSON(Details{
		Pokemon:     p,
		Description: Description(p, lang),
		Genders:     PossibleGenders(p.Pokemon),
	})
}

// HandleName resolves the display names of a pokemon.
// @Summary Resolve Pokemon Name
// @Description Returns the display, full, species and form names of a pokemon, optionally nicknamed.
// @Tags pokemon
// @Produce json
// @Param id path string true "Pokemon id"
// @Param nickname query string false "Nickname"
// @Param lang query string false "Language code or tag" default(eng)
// @Success 200 {object} NameInfo
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Dataset error"
// @Router /pokemon/{id}/name [get]
func (h *Handler) HandleName(c *fiber.Ctx) error {
	info, ok, err := h.service.Name(c.Params("id"), c.Query("nickname"), i18n.Resolve(c.Query("lang")))
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "pokemon " + c.Params("id") + " not found"})
	}
	return c.JSON(info)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	logger.WithRayID(h.logger, c).Error("Pokemon request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// parseFilter reads a Filter from the query string. An invalid gen is ignored.
func parseFilter(c *fiber.Ctx) Filter {
	f := Filter{
		Q:     c.Query("q"),
		Lang:  i18n.Resolve(c.Query("lang")),
		Color: c.Query("color"),
		Type:  c.Query("type"),
		Forms: utils.ToBool(c.Query("forms")),
		Shiny: utils.ToBool(c.Query("shiny")),
	}
	if gen, ok := utils.ParseInt(c.Query("gen")); ok && gen > 0 {
		f.Gen = gen
	}
	return f
}
