package banner

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bnchealth/benefits-backend/internal/assetcache"
)

// Handler exposes the banner pipeline over HTTP. The display config is
// validated at startup and read-only here.
type Handler struct {
	service *Service
	display DisplayConfig
	source  WritablePayloadSource
	icons   *assetcache.Cache
}

func NewHandler(service *Service, display DisplayConfig, source WritablePayloadSource, icons *assetcache.Cache) *Handler {
	return &Handler{service: service, display: display, source: source, icons: icons}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/banners", h.getBanners)
	app.Get("/api/v1/banners/display", h.getDisplayBanners)
	app.Get("/api/v1/banners/style/:style", h.getBannersByStyle)
	app.Get("/api/v1/banner/:id", h.getBanner)
	app.Get("/api/v1/banner/:id/icon", h.getBannerIcon)

	// dev-only endpoint to restore the sample payload — enabled when ALLOW_RESET_BANNERS=1
	app.Post("/dev/reset-banners", h.resetBanners)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/banners/reload", h.reloadBanners)
}

func (h *Handler) getBanners(c *fiber.Ctx) error {
	return c.JSON(h.service.All())
}

// getDisplayBanners returns the filtered, typed, ordered sections the client
// renders top to bottom.
func (h *Handler) getDisplayBanners(c *fiber.Ctx) error {
	return c.JSON(h.display.Group(h.service.All()))
}

func (h *Handler) getBannersByStyle(c *fiber.Ctx) error {
	style, ok := ParseDisplayStyle(c.Params("style"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("unknown display style")
	}
	return c.JSON(h.service.ByStyle(style))
}

func (h *Handler) getBanner(c *fiber.Ctx) error {
	item, ok := h.service.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Banner not found")
	}
	return c.JSON(item)
}

func (h *Handler) getBannerIcon(c *fiber.Ctx) error {
	item, ok := h.service.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Banner not found")
	}
	if h.icons == nil {
		return c.Status(fiber.StatusNotFound).SendString("icon not available")
	}
	data, ok := h.icons.Get(item.IconName + ".png")
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("icon not available")
	}
	c.Set("Content-Type", http.DetectContentType(data))
	return c.Send(data)
}

// reloadBanners replaces the collection from the request body. The load is
// all-or-nothing: on decode failure the previous collection stays live and
// nothing is persisted.
func (h *Handler) reloadBanners(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "payload is required"})
	}
	if err := h.service.LoadJSON(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	revision := uuid.NewString()
	if h.source != nil {
		if err := h.source.Save(c.UserContext(), body, revision); err != nil {
			// collection is already replaced; report the persistence failure
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"revision": revision, "count": h.service.Count()})
}

// resetBanners restores the built-in sample payload.
// Protected by the ALLOW_RESET_BANNERS environment variable; set it to "1" to allow.
func (h *Handler) resetBanners(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_BANNERS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}
	if err := h.service.LoadJSON(SamplePayload()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if h.source != nil {
		if err := h.source.Save(c.UserContext(), SamplePayload(), "sample"); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"count": h.service.Count()})
}
