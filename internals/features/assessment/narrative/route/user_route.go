package route

import (
	ncontroller "spsp_backend/internals/features/assessment/narrative/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InterpretationUserRoutes(user fiber.Router, db *gorm.DB) {
	interpretationCtrl := ncontroller.NewInterpretationController(db)

	// =========================
	// 📝 INTERPRETASI NARATIF
	// =========================

	// Prefix: /interpretations → /api/u/interpretations/...
	interpretations := user.Group("/interpretations")

	interpretations.Get("/", interpretationCtrl.Interpret)
	interpretations.Post("/paragraph", interpretationCtrl.BuildParagraph)
}
