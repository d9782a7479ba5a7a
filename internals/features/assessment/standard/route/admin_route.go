package route

import (
	scontroller "spsp_backend/internals/features/assessment/standard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StandardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	standardCtrl := scontroller.NewCustomStandardController(db)
	adjustmentCtrl := scontroller.NewAdjustmentController(db)

	// =========================
	// ⚖️ CUSTOM STANDARD (ADMIN AREA)
	// =========================

	// Prefix: /custom-standards → /api/a/custom-standards/...
	standards := admin.Group("/custom-standards")

	standards.Post("/", standardCtrl.Create)
	standards.Get("/", standardCtrl.List)
	standards.Get("/:id", standardCtrl.GetByID)
	standards.Patch("/:id", standardCtrl.Patch)
	standards.Delete("/select/:template_id", standardCtrl.ClearSelection) // harus di atas /:id
	standards.Delete("/:id", standardCtrl.Delete)
	standards.Put("/:id/select", standardCtrl.Select)

	// =========================
	// 🎚️ PENYESUAIAN STANDAR (SESSION)
	// =========================

	// Prefix: /standard-adjustments → /api/a/standard-adjustments/...
	adjustments := admin.Group("/standard-adjustments")

	adjustments.Get("/:template_id", adjustmentCtrl.Get)
	adjustments.Put("/:template_id", adjustmentCtrl.Save)
	adjustments.Delete("/:template_id", adjustmentCtrl.Reset)
}
