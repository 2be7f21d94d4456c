package localization

import "github.com/gofiber/fiber/v2"

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/strings", h.getStrings)
}

// getStrings returns the bundle for ?lang= or the active language.
func (h *Handler) getStrings(c *fiber.Ctx) error {
	lang := h.manager.Language()
	if q := c.Query("lang"); q != "" {
		lang = Language(q)
	}
	bundle, err := h.manager.Bundle(lang)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "strings not available for " + string(lang)})
	}
	return c.JSON(fiber.Map{"language": lang, "strings": bundle})
}
