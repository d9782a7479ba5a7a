package route

import (
	scontroller "spsp_backend/internals/features/assessment/scoring/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AssessmentReportUserRoutes(user fiber.Router, db *gorm.DB) {
	reportCtrl := scontroller.NewAssessmentReportController(db)

	// =========================
	// 📊 LAPORAN INDIVIDU
	// =========================

	// Prefix: /participants → /api/u/reports/participants/...
	reports := user.Group("/participants")

	reports.Get("/:participant_id/category/:category_code", reportCtrl.GetCategoryAssessment)
	reports.Get("/:participant_id/final", reportCtrl.GetFinalAssessment)
}
