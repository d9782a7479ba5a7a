package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"spsp_backend/internals/helpers/session"
)

// SessionMiddleware membaca X-Session-ID (generate kalau kosong), echo balik
// ke response, dan menaruh Store session di Locals("session").
// Semua state penyesuaian standar di-scope per session id ini.
func SessionMiddleware(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get("X-Session-ID"))
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Session-ID", id)
		c.Locals("session_id", id)
		c.Locals("session", manager.Scope(id))
		return c.Next()
	}
}

// SessionFromCtx mengambil Store session yang sudah dipasang middleware.
func SessionFromCtx(c *fiber.Ctx) session.Store {
	if s, ok := c.Locals("session").(session.Store); ok {
		return s
	}
	// route tanpa middleware session: fallback store sekali-pakai
	return session.NewManager().Scope(utils.UUID())
}
