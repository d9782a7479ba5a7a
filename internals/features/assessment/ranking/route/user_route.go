package route

import (
	rcontroller "spsp_backend/internals/features/assessment/ranking/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RankingUserRoutes(user fiber.Router, db *gorm.DB) {
	rankingCtrl := rcontroller.NewRankingController(db)

	// =========================
	// 🏆 RANKING & REKAP
	// =========================

	// Prefix: /rankings → /api/u/reports/rankings/...
	rankings := user.Group("/rankings")

	rankings.Get("/", rankingCtrl.GetRankings)
	rankings.Get("/combined", rankingCtrl.GetCombinedRankings)
	rankings.Get("/rekap", rankingCtrl.GetRekapRanking)
	rankings.Get("/mc-mapping", rankingCtrl.GetMcMapping)
}
