// file: internals/features/assessment/ranking/controller/ranking_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventSvc "spsp_backend/internals/features/assessment/event/service"
	service "spsp_backend/internals/features/assessment/ranking/service"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/middlewares"
)

type RankingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{
		DB:        db,
		Validator: validator.New(),
	}
}

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

func categoryCodeQuery(c *fiber.Ctx) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(c.Query("category_code", tmplModel.CategoryCodePotensi)))
	switch code {
	case tmplModel.CategoryCodePotensi, tmplModel.CategoryCodeKompetensi:
		return code, true
	default:
		return "", false
	}
}

// GET /reports/rankings?category_code=potensi|kompetensi
func (ctl *RankingController) GetRankings(c *fiber.Ctx) error {
	categoryCode, ok := categoryCodeQuery(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_code harus potensi atau kompetensi")
	}

	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	svc := service.NewRankingService(ctl.DB, sess)
	entries, err := svc.GetRankings(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		categoryCode, resolveTolerance(c, sess),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun ranking")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"event_code":    scope.EventCode,
		"category_code": categoryCode,
		"rankings":      entries,
	})
}

// GET /reports/rankings/combined — gabungan potensi+kompetensi berbobot kategori
func (ctl *RankingController) GetCombinedRankings(c *fiber.Ctx) error {
	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	svc := service.NewRankingService(ctl.DB, sess)
	entries, err := svc.GetCombinedRankings(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		resolveTolerance(c, sess),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun ranking gabungan")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"event_code": scope.EventCode,
		"rankings":   entries,
	})
}

// GET /reports/rankings/rekap?category_code= — ringkasan jumlah per kesimpulan
func (ctl *RankingController) GetRekapRanking(c *fiber.Ctx) error {
	categoryCode, ok := categoryCodeQuery(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_code harus potensi atau kompetensi")
	}

	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	svc := service.NewRankingService(ctl.DB, sess)
	summary, err := svc.GetRekapRanking(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		categoryCode, resolveTolerance(c, sess),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun rekap ranking")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"event_code":    scope.EventCode,
		"category_code": categoryCode,
		"summary":       summary,
	})
}

// GET /reports/rankings/mc-mapping?category_code= — mapping rekomendasi vs kuota formasi
func (ctl *RankingController) GetMcMapping(c *fiber.Ctx) error {
	categoryCode, ok := categoryCodeQuery(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_code harus potensi atau kompetensi")
	}

	sess := middlewares.SessionFromCtx(c)
	scope, err := eventSvc.ResolveReportScope(ctl.DB, sess, c.Query("event_id"), c.Query("position_formation_id"))
	if err != nil {
		return scopeError(c, err)
	}

	svc := service.NewRankingService(ctl.DB, sess)
	entries, err := svc.GetMcMapping(
		scope.EventID, scope.PositionFormationID, scope.TemplateID,
		categoryCode, resolveTolerance(c, sess),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun mc mapping")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"event_code":    scope.EventCode,
		"category_code": categoryCode,
		"mappings":      entries,
	})
}
