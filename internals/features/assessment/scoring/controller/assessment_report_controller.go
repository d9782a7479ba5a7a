// file: internals/features/assessment/scoring/controller/assessment_report_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventSvc "spsp_backend/internals/features/assessment/event/service"
	service "spsp_backend/internals/features/assessment/scoring/service"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/middlewares"
)

type AssessmentReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentReportController(db *gorm.DB) *AssessmentReportController {
	return &AssessmentReportController{
		DB:        db,
		Validator: validator.New(),
	}
}

// resolveTolerance: query ?tolerance= menang, selain itu pakai session.
func resolveTolerance(c *fiber.Ctx, sess session.Store) int {
	if t := c.QueryInt("tolerance", -1); t >= 0 && t <= 100 {
		return t
	}
	return session.Tolerance(sess)
}

func scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, eventSvc.ErrScopeIncomplete) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menentukan scope laporan")
}

func normalizeCategoryCode(raw string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(raw))
	switch code {
	case tmplModel.CategoryCodePotensi, tmplModel.CategoryCodeKompetensi:
		return code, true
	default:
		return "", false
	}
}

// GET /reports/participants/:participant_id/category/:category_code
// Rincian penilaian peserta untuk satu kategori (potensi/kompetensi).
func (ctl *AssessmentReportController) GetCategoryAssessment(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(strings.TrimSpace(c.Params("participant_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "participant_id tidak valid")
	}
	categoryCode, ok := normalizeCategoryCode(c.Params("category_code"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_code harus potensi atau kompetensi")
	}

	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	aggregator := service.NewScoreAggregator(ctl.DB, sess)
	result, err := aggregator.GetCategoryAssessment(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		participantID, categoryCode, resolveTolerance(c, sess),
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peserta tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan kategori")
	}
	return helper.JsonOK(c, "", result)
}

// GET /reports/participants/:participant_id/final
// Laporan akhir individual: kedua kategori + kesimpulan gabungan.
func (ctl *AssessmentReportController) GetFinalAssessment(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(strings.TrimSpace(c.Params("participant_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "participant_id tidak valid")
	}

	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	aggregator := service.NewScoreAggregator(ctl.DB, sess)
	result, err := aggregator.GetFinalAssessment(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		participantID, resolveTolerance(c, sess),
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Peserta tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan akhir")
	}
	return helper.JsonOK(c, "", result)
}
