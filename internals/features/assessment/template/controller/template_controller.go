// file: internals/features/assessment/template/controller/template_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "spsp_backend/internals/features/assessment/template/model"
	stdService "spsp_backend/internals/features/assessment/standard/service"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/middlewares"
)

type TemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// GET /templates?institution_id=
func (ctl *TemplateController) List(c *fiber.Ctx) error {
	query := ctl.DB.Model(&model.TemplateModel{})
	if raw := strings.TrimSpace(c.Query("institution_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "institution_id tidak valid")
		}
		query = query.Where("template_institution_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 25, 200)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.TemplateModel
	err := query.
		Order("template_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	pagination.Count = len(rows)
	return helper.JsonList(c, "", rows, &pagination)
}

// GET /templates/:id — template beserta kategori, aspek & sub-aspek terurut
func (ctl *TemplateController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row model.TemplateModel
	err = ctl.DB.
		Preload("CategoryTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_type_code ASC")
		}).
		Preload("CategoryTypes.Aspects", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspect_order ASC")
		}).
		Preload("CategoryTypes.Aspects.SubAspects", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_aspect_order ASC")
		}).
		First(&row, "template_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "", row)
}

// GET /templates/:id/effective-standard
// Pohon template dengan nilai EFEKTIF menurut session ini (adjustment >
// custom standard terpilih > default DB) — dipakai UI form penyesuaian.
func (ctl *TemplateController) EffectiveStandard(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var categories []model.CategoryTypeModel
	err = ctl.DB.
		Preload("Aspects", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspect_order ASC")
		}).
		Preload("Aspects.SubAspects", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_aspect_order ASC")
		}).
		Where("category_type_template_id = ?", id).
		Order("category_type_code ASC").
		Find(&categories).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if len(categories) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}

	sess := middlewares.SessionFromCtx(c)
	resolver := stdService.NewStandardResolver(ctl.DB, sess)

	type effectiveSubAspect struct {
		SubAspectID   uuid.UUID `json:"sub_aspect_id"`
		SubAspectCode string    `json:"sub_aspect_code"`
		SubAspectName string    `json:"sub_aspect_name"`
		Rating        float64   `json:"rating"`
		Active        bool      `json:"active"`
	}
	type effectiveAspect struct {
		AspectID   uuid.UUID            `json:"aspect_id"`
		AspectCode string               `json:"aspect_code"`
		AspectName string               `json:"aspect_name"`
		Weight     int                  `json:"weight"`
		Rating     float64              `json:"rating"`
		Active     bool                 `json:"active"`
		SubAspects []effectiveSubAspect `json:"sub_aspects,omitempty"`
	}
	type effectiveCategory struct {
		CategoryTypeID   uuid.UUID         `json:"category_type_id"`
		CategoryTypeCode string            `json:"category_type_code"`
		CategoryTypeName string            `json:"category_type_name"`
		Weight           int               `json:"weight"`
		Aspects          []effectiveAspect `json:"aspects"`
	}

	out := make([]effectiveCategory, 0, len(categories))
	for _, category := range categories {
		entry := effectiveCategory{
			CategoryTypeID:   category.CategoryTypeID,
			CategoryTypeCode: category.CategoryTypeCode,
			CategoryTypeName: category.CategoryTypeName,
			Weight:           resolver.GetCategoryWeight(id, category.CategoryTypeCode),
			Aspects: make([]effectiveAspect, 0, len(category.Aspects)),
		}
		for _, aspect := range category.Aspects {
			item := effectiveAspect{
				AspectID:   aspect.AspectID,
				AspectCode: aspect.AspectCode,
				AspectName: aspect.AspectName,
				Weight:     resolver.GetAspectWeight(id, aspect.AspectCode),
				Rating:     resolver.GetAspectRating(id, aspect.AspectCode),
				Active:     resolver.IsAspectActive(id, aspect.AspectCode),
			}
			for _, sub := range aspect.SubAspects {
				item.SubAspects = append(item.SubAspects, effectiveSubAspect{
					SubAspectID:   sub.SubAspectID,
					SubAspectCode: sub.SubAspectCode,
					SubAspectName: sub.SubAspectName,
					Rating:        resolver.GetSubAspectRating(id, sub.SubAspectCode),
					Active:        resolver.IsSubAspectActive(id, sub.SubAspectCode),
				})
			}
			entry.Aspects = append(entry.Aspects, item)
		}
		out = append(out, entry)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"template_id": id,
		"categories":  out,
	})
}
