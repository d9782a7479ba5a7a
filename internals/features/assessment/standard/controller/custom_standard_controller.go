// file: internals/features/assessment/standard/controller/custom_standard_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "spsp_backend/internals/features/assessment/standard/dto"
	model "spsp_backend/internals/features/assessment/standard/model"
	service "spsp_backend/internals/features/assessment/standard/service"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/middlewares"
)

type CustomStandardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCustomStandardController(db *gorm.DB) *CustomStandardController {
	return &CustomStandardController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func toAspectConfigs(payload map[string]dto.AspectConfigPayload) map[string]model.CustomStandardAspectConfig {
	out := make(map[string]model.CustomStandardAspectConfig, len(payload))
	for code, cfg := range payload {
		out[code] = model.CustomStandardAspectConfig{
			Weight: cfg.Weight,
			Active: cfg.Active,
			Rating: cfg.Rating,
		}
	}
	return out
}

func toSubAspectConfigs(payload map[string]dto.SubAspectConfigPayload) map[string]model.CustomStandardSubAspectConfig {
	out := make(map[string]model.CustomStandardSubAspectConfig, len(payload))
	for code, cfg := range payload {
		out[code] = model.CustomStandardSubAspectConfig{
			Rating: cfg.Rating,
			Active: cfg.Active,
		}
	}
	return out
}

// POST /custom-standards
func (ctl *CustomStandardController) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomStandardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	aspectConfigs := toAspectConfigs(req.AspectConfigs)
	subAspectConfigs := toSubAspectConfigs(req.SubAspectConfigs)
	if errs := service.ValidateCustomStandardConfigs(
		ctl.DB, req.CustomStandardTemplateID, req.CategoryWeights, aspectConfigs, subAspectConfigs,
	); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	row := model.CustomStandardModel{
		CustomStandardID:               uuid.New(),
		CustomStandardInstitutionID:    req.CustomStandardInstitutionID,
		CustomStandardTemplateID:       req.CustomStandardTemplateID,
		CustomStandardName:             strings.TrimSpace(req.CustomStandardName),
		CustomStandardCategoryWeights:  datatypes.NewJSONType(req.CategoryWeights),
		CustomStandardAspectConfigs:    datatypes.NewJSONType(aspectConfigs),
		CustomStandardSubAspectConfigs: datatypes.NewJSONType(subAspectConfigs),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan custom standard")
	}
	return helper.JsonCreated(c, "Custom standard berhasil dibuat", dto.ToCustomStandardResponse(&row))
}

// GET /custom-standards?template_id=&institution_id=
func (ctl *CustomStandardController) List(c *fiber.Ctx) error {
	query := ctl.DB.Model(&model.CustomStandardModel{})
	if raw := strings.TrimSpace(c.Query("template_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
		}
		query = query.Where("custom_standard_template_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("institution_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "institution_id tidak valid")
		}
		query = query.Where("custom_standard_institution_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 25, 200)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.CustomStandardModel
	err := query.
		Order("custom_standard_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	data := make([]dto.CustomStandardResponse, 0, len(rows))
	for i := range rows {
		data = append(data, dto.ToCustomStandardResponse(&rows[i]))
	}
	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	pagination.Count = len(data)
	return helper.JsonList(c, "", data, &pagination)
}

// GET /custom-standards/:id
func (ctl *CustomStandardController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.CustomStandardModel
	if err := ctl.DB.First(&row, "custom_standard_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Custom standard tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "", dto.ToCustomStandardResponse(&row))
}

// PATCH /custom-standards/:id — partial update
func (ctl *CustomStandardController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.CustomStandardModel
	if err := ctl.DB.First(&row, "custom_standard_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Custom standard tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req dto.PatchCustomStandardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	categoryWeights := row.CategoryWeights()
	aspectConfigs := row.AspectConfigs()
	subAspectConfigs := row.SubAspectConfigs()
	if req.CategoryWeights != nil {
		categoryWeights = req.CategoryWeights
	}
	if req.AspectConfigs != nil {
		aspectConfigs = toAspectConfigs(req.AspectConfigs)
	}
	if req.SubAspectConfigs != nil {
		subAspectConfigs = toSubAspectConfigs(req.SubAspectConfigs)
	}
	if errs := service.ValidateCustomStandardConfigs(
		ctl.DB, row.CustomStandardTemplateID, categoryWeights, aspectConfigs, subAspectConfigs,
	); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	if req.CustomStandardName != nil {
		row.CustomStandardName = strings.TrimSpace(*req.CustomStandardName)
	}
	row.CustomStandardCategoryWeights = datatypes.NewJSONType(categoryWeights)
	row.CustomStandardAspectConfigs = datatypes.NewJSONType(aspectConfigs)
	row.CustomStandardSubAspectConfigs = datatypes.NewJSONType(subAspectConfigs)

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui custom standard")
	}
	return helper.JsonUpdated(c, "Custom standard berhasil diperbarui", dto.ToCustomStandardResponse(&row))
}

// DELETE /custom-standards/:id — soft delete
func (ctl *CustomStandardController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	result := ctl.DB.Delete(&model.CustomStandardModel{}, "custom_standard_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus custom standard")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Custom standard tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Custom standard berhasil dihapus", fiber.Map{"custom_standard_id": id})
}

// PUT /custom-standards/:id/select — pilih standard untuk session ini
func (ctl *CustomStandardController) Select(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.CustomStandardModel
	if err := ctl.DB.First(&row, "custom_standard_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Custom standard tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	sess := middlewares.SessionFromCtx(c)
	if err := service.SelectCustomStandard(ctl.DB, sess, row.CustomStandardTemplateID, &id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memilih custom standard")
	}
	return helper.JsonUpdated(c, "Custom standard dipilih untuk session ini", fiber.Map{
		"custom_standard_id": id,
		"template_id":        row.CustomStandardTemplateID,
	})
}

// DELETE /custom-standards/select/:template_id — kembali ke standard default
func (ctl *CustomStandardController) ClearSelection(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}
	sess := middlewares.SessionFromCtx(c)
	if err := service.SelectCustomStandard(ctl.DB, sess, templateID, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengembalikan standard default")
	}
	return helper.JsonUpdated(c, "Kembali ke standard default", fiber.Map{"template_id": templateID})
}
