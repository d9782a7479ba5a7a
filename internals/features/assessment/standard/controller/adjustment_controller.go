// file: internals/features/assessment/standard/controller/adjustment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "spsp_backend/internals/features/assessment/standard/dto"
	model "spsp_backend/internals/features/assessment/standard/model"
	service "spsp_backend/internals/features/assessment/standard/service"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/middlewares"
)

type AdjustmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdjustmentController(db *gorm.DB) *AdjustmentController {
	return &AdjustmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// PUT /standard-adjustments/:template_id
func (ctl *AdjustmentController) Save(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}
	var req dto.SaveAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	sess := middlewares.SessionFromCtx(c)
	if errs := service.SaveAdjustment(ctl.DB, sess, templateID, &req); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	return helper.JsonUpdated(c, "Penyesuaian standar tersimpan di session", fiber.Map{
		"template_id": templateID,
	})
}

// GET /standard-adjustments/:template_id — state adjustment session saat ini
func (ctl *AdjustmentController) Get(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}
	sess := middlewares.SessionFromCtx(c)

	adjustment, _ := sess.Get(session.AdjustmentKey(templateID), nil).(*model.StandardAdjustment)
	selected, _ := sess.Get(session.SelectedStandardKey(templateID), "").(string)

	return helper.JsonOK(c, "", fiber.Map{
		"template_id":          templateID,
		"adjustment":           adjustment,
		"selected_standard_id": selected,
		"tolerance":            session.Tolerance(sess),
	})
}

// DELETE /standard-adjustments/:template_id
func (ctl *AdjustmentController) Reset(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}
	sess := middlewares.SessionFromCtx(c)
	service.ResetAdjustment(sess, templateID)
	return helper.JsonDeleted(c, "Penyesuaian standar di-reset", fiber.Map{
		"template_id": templateID,
	})
}

// PUT /report-filters/tolerance
func (ctl *AdjustmentController) SaveTolerance(c *fiber.Ctx) error {
	var req dto.ToleranceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	sess := middlewares.SessionFromCtx(c)
	if errs := service.SaveTolerance(sess, req.Tolerance); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	return helper.JsonUpdated(c, "Toleransi tersimpan", fiber.Map{
		"tolerance": req.Tolerance,
	})
}

// PUT /report-filters — filter rekap (event_code & formasi jabatan)
func (ctl *AdjustmentController) SaveFilters(c *fiber.Ctx) error {
	var req dto.ReportFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	sess := middlewares.SessionFromCtx(c)
	if req.EventCode != nil {
		code := strings.TrimSpace(*req.EventCode)
		if code == "" {
			sess.Forget(session.FilterEventCodeKey)
		} else {
			sess.Put(session.FilterEventCodeKey, code)
		}
	}
	if req.PositionFormationID != nil {
		sess.Put(session.FilterPositionFormationKey, req.PositionFormationID.String())
	}
	return helper.JsonUpdated(c, "Filter laporan tersimpan", fiber.Map{
		"event_code":            sess.Get(session.FilterEventCodeKey, nil),
		"position_formation_id": sess.Get(session.FilterPositionFormationKey, nil),
	})
}

// GET /report-filters
func (ctl *AdjustmentController) GetFilters(c *fiber.Ctx) error {
	sess := middlewares.SessionFromCtx(c)
	return helper.JsonOK(c, "", fiber.Map{
		"event_code":            sess.Get(session.FilterEventCodeKey, nil),
		"position_formation_id": sess.Get(session.FilterPositionFormationKey, nil),
		"tolerance":             session.Tolerance(sess),
	})
}

// DELETE /report-filters
func (ctl *AdjustmentController) ResetFilters(c *fiber.Ctx) error {
	sess := middlewares.SessionFromCtx(c)
	sess.Forget(session.FilterEventCodeKey)
	sess.Forget(session.FilterPositionFormationKey)
	sess.Forget(session.ToleranceKey)
	return helper.JsonDeleted(c, "Filter laporan di-reset", nil)
}
