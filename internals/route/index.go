// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	eventRoute "spsp_backend/internals/features/assessment/event/route"
	narrativeRoute "spsp_backend/internals/features/assessment/narrative/route"
	rankingRoute "spsp_backend/internals/features/assessment/ranking/route"
	scoringRoute "spsp_backend/internals/features/assessment/scoring/route"
	standardRoute "spsp_backend/internals/features/assessment/standard/route"
	talentRoute "spsp_backend/internals/features/assessment/talent/route"
	templateRoute "spsp_backend/internals/features/assessment/template/route"
	"spsp_backend/internals/helpers/cachestore"
	"spsp_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cache *cachestore.Store) {
	startTime = time.Now()

	// ===================== GROUPS =====================
	// /api/a → area admin (kelola master & standar)
	// /api/u → area user laporan (read-only + preferensi session)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", middlewares.DBMiddleware(db))

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", middlewares.DBMiddleware(db))

	// laporan itu query berat → limiter khusus
	reports := user.Group("/reports", middlewares.ReportRateLimiter())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Template routes...")
	templateRoute.TemplateAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Event routes...")
	eventRoute.EventAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Standard routes...")
	standardRoute.StandardAdminRoutes(admin, db)
	standardRoute.ReportFilterUserRoutes(user, db)

	log.Println("[INFO] Mounting Report routes...")
	scoringRoute.AssessmentReportUserRoutes(reports, db)
	rankingRoute.RankingUserRoutes(reports, db)
	talentRoute.NineBoxUserRoutes(reports, db, cache)
	narrativeRoute.InterpretationUserRoutes(user, db)
}
