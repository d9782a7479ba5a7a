package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"spsp_backend/internals/helpers/session"
	loggerMw "spsp_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting:
// recovery dulu, baru logger/cors/limiter/session).
func SetupMiddlewares(app *fiber.App, sessions *session.Manager) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(SessionMiddleware(sessions))
}
