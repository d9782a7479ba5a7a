package route

import (
	tcontroller "spsp_backend/internals/features/assessment/template/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TemplateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	templateCtrl := tcontroller.NewTemplateController(db)

	// =========================
	// 📋 TEMPLATE PENILAIAN (ADMIN AREA)
	// =========================

	// Prefix: /templates → /api/a/templates/...
	templates := admin.Group("/templates")

	templates.Get("/", templateCtrl.List)
	templates.Get("/:id", templateCtrl.GetByID)
	templates.Get("/:id/effective-standard", templateCtrl.EffectiveStandard)
}
