package route

import (
	scontroller "spsp_backend/internals/features/assessment/standard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportFilterUserRoutes(user fiber.Router, db *gorm.DB) {
	adjustmentCtrl := scontroller.NewAdjustmentController(db)

	// =========================
	// 🔍 FILTER LAPORAN (SESSION)
	// =========================

	// Prefix: /report-filters → /api/u/report-filters/...
	filters := user.Group("/report-filters")

	filters.Get("/", adjustmentCtrl.GetFilters)
	filters.Put("/", adjustmentCtrl.SaveFilters)
	filters.Delete("/", adjustmentCtrl.ResetFilters)
	filters.Put("/tolerance", adjustmentCtrl.SaveTolerance)
}
