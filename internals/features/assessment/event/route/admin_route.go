package route

import (
	econtroller "spsp_backend/internals/features/assessment/event/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtrl := econtroller.NewEventController(db)

	// =========================
	// 🗓️ EVENT ASSESSMENT (ADMIN AREA)
	// =========================

	// Prefix: /events → /api/a/events/...
	events := admin.Group("/events")

	events.Get("/", eventCtrl.List)
	events.Get("/:id", eventCtrl.GetByID)
	events.Get("/:id/position-formations", eventCtrl.ListPositionFormations)
	events.Get("/:id/participants", eventCtrl.ListParticipants)
}
