package route

import (
	tcontroller "spsp_backend/internals/features/assessment/talent/controller"
	"spsp_backend/internals/helpers/cachestore"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NineBoxUserRoutes(user fiber.Router, db *gorm.DB, cache *cachestore.Store) {
	nineBoxCtrl := tcontroller.NewNineBoxController(db, cache)

	// =========================
	// 🧩 NINE BOX TALENT MAPPING
	// =========================

	// Prefix: /nine-box → /api/u/reports/nine-box
	user.Get("/nine-box", nineBoxCtrl.GetMatrix)
}
