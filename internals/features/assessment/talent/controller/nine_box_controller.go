// file: internals/features/assessment/talent/controller/nine_box_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventSvc "spsp_backend/internals/features/assessment/event/service"
	service "spsp_backend/internals/features/assessment/talent/service"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/cachestore"
	"spsp_backend/internals/middlewares"
)

type NineBoxController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cachestore.Store
}

func NewNineBoxController(db *gorm.DB, cache *cachestore.Store) *NineBoxController {
	return &NineBoxController{
		DB:        db,
		Validator: validator.New(),
		Cache:     cache,
	}
}

// GET /reports/nine-box
// Matriks 9-box populasi (event, formasi): potensi vs kinerja.
func (ctl *NineBoxController) GetMatrix(c *fiber.Ctx) error {
	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		if errors.Is(err, eventSvc.ErrScopeIncomplete) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menentukan scope laporan")
	}

	svc := service.NewNineBoxService(ctl.DB, sess, ctl.Cache)
	result, err := svc.GetNineBoxMatrixData(scope.EventID, scope.PositionFormationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun matriks nine box")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"event_code": scope.EventCode,
		"matrix":     result,
	})
}
