// file: internals/features/assessment/standard/service/standard_resolver_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	stdModel "spsp_backend/internals/features/assessment/standard/model"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	"spsp_backend/internals/helpers/session"
)

// StandardResolver menyelesaikan bobot/rating/status aktif efektif untuk
// kategori, aspek, dan sub-aspek sebuah template dengan rantai prioritas:
//
//	adjustment session  >  custom standard terpilih  >  default database
//
// Rantai dievaluasi per-key. Lookup yang tidak ketemu mengembalikan nilai
// aman (0 / true / kosong), bukan error. Murni baca: tidak ada side effect.
type StandardResolver struct {
	DB   *gorm.DB
	Sess session.Store

	// memo per-request supaya session/DB tidak dibaca berulang
	adjByTemplate map[uuid.UUID]*stdModel.StandardAdjustment
	stdByTemplate map[uuid.UUID]*stdModel.CustomStandardModel
}

func NewStandardResolver(db *gorm.DB, sess session.Store) *StandardResolver {
	return &StandardResolver{
		DB:            db,
		Sess:          sess,
		adjByTemplate: map[uuid.UUID]*stdModel.StandardAdjustment{},
		stdByTemplate: map[uuid.UUID]*stdModel.CustomStandardModel{},
	}
}

/* ========================= Layer loaders ========================= */

// Adjustment mengambil adjustment session untuk template (nil kalau tidak ada).
func (r *StandardResolver) Adjustment(templateID uuid.UUID) *stdModel.StandardAdjustment {
	if adj, ok := r.adjByTemplate[templateID]; ok {
		return adj
	}
	var adj *stdModel.StandardAdjustment
	if v := r.Sess.Get(session.AdjustmentKey(templateID), nil); v != nil {
		if cast, ok := v.(*stdModel.StandardAdjustment); ok {
			adj = cast
		} else if cast, ok := v.(stdModel.StandardAdjustment); ok {
			adj = &cast
		}
	}
	r.adjByTemplate[templateID] = adj
	return adj
}

// SelectedStandard mengambil custom standard yang dipilih di session
// (nil kalau tidak ada pointer, atau record-nya sudah dihapus).
func (r *StandardResolver) SelectedStandard(templateID uuid.UUID) *stdModel.CustomStandardModel {
	if std, ok := r.stdByTemplate[templateID]; ok {
		return std
	}
	var std *stdModel.CustomStandardModel
	if v := r.Sess.Get(session.SelectedStandardKey(templateID), nil); v != nil {
		if raw, ok := v.(string); ok && raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				var row stdModel.CustomStandardModel
				err := r.DB.
					Where("custom_standard_id = ? AND custom_standard_template_id = ?", id, templateID).
					First(&row).Error
				if err == nil {
					std = &row
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					// DB error: perlakukan seperti tidak ada standard (fail-open ke default)
					std = nil
				}
			}
		}
	}
	r.stdByTemplate[templateID] = std
	return std
}

/* ========================= Category ========================= */

func (r *StandardResolver) GetCategoryWeight(templateID uuid.UUID, code string) int {
	if adj := r.Adjustment(templateID); adj != nil {
		if w, ok := adj.CategoryWeights[code]; ok {
			return w
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if w, ok := std.CategoryWeights()[code]; ok {
			return w
		}
	}
	var row tmplModel.CategoryTypeModel
	err := r.DB.
		Where("category_type_template_id = ? AND category_type_code = ?", templateID, code).
		First(&row).Error
	if err != nil {
		return 0
	}
	return row.CategoryTypeWeightPercentage
}

/* ========================= Aspect ========================= */

func (r *StandardResolver) GetAspectWeight(templateID uuid.UUID, code string) int {
	if adj := r.Adjustment(templateID); adj != nil {
		if w, ok := adj.AspectWeights[code]; ok {
			return w
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if cfg, ok := std.AspectConfigs()[code]; ok {
			return cfg.Weight
		}
	}
	var row tmplModel.AspectModel
	err := r.DB.
		Where("aspect_template_id = ? AND aspect_code = ?", templateID, code).
		First(&row).Error
	if err != nil {
		return 0
	}
	return row.AspectWeightPercentage
}

func (r *StandardResolver) GetAspectRating(templateID uuid.UUID, code string) float64 {
	if adj := r.Adjustment(templateID); adj != nil {
		if rating, ok := adj.AspectRatings[code]; ok {
			return rating
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if cfg, ok := std.AspectConfigs()[code]; ok && cfg.Rating != nil {
			return *cfg.Rating
		}
	}
	var row tmplModel.AspectModel
	err := r.DB.
		Where("aspect_template_id = ? AND aspect_code = ?", templateID, code).
		First(&row).Error
	if err != nil {
		return 0
	}
	return row.AspectStandardRating
}

// IsAspectActive: default true ketika tidak diatur di layer mana pun.
func (r *StandardResolver) IsAspectActive(templateID uuid.UUID, code string) bool {
	if adj := r.Adjustment(templateID); adj != nil {
		if active, ok := adj.AspectActive[code]; ok {
			return active
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if cfg, ok := std.AspectConfigs()[code]; ok && cfg.Active != nil {
			return *cfg.Active
		}
	}
	return true
}

/* ========================= Sub-aspect ========================= */

func (r *StandardResolver) GetSubAspectRating(templateID uuid.UUID, code string) float64 {
	if adj := r.Adjustment(templateID); adj != nil {
		if rating, ok := adj.SubAspectRatings[code]; ok {
			return rating
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if cfg, ok := std.SubAspectConfigs()[code]; ok && cfg.Rating != nil {
			return *cfg.Rating
		}
	}
	var row tmplModel.SubAspectModel
	err := r.DB.
		Joins("JOIN aspects ON aspects.aspect_id = sub_aspects.sub_aspect_aspect_id").
		Where("aspects.aspect_template_id = ? AND sub_aspects.sub_aspect_code = ?", templateID, code).
		First(&row).Error
	if err != nil {
		return 0
	}
	return row.SubAspectStandardRating
}

func (r *StandardResolver) IsSubAspectActive(templateID uuid.UUID, code string) bool {
	if adj := r.Adjustment(templateID); adj != nil {
		if active, ok := adj.SubAspectActive[code]; ok {
			return active
		}
	}
	if std := r.SelectedStandard(templateID); std != nil {
		if cfg, ok := std.SubAspectConfigs()[code]; ok && cfg.Active != nil {
			return *cfg.Active
		}
	}
	return true
}

/* ========================= Active aspect ids ========================= */

// GetActiveAspectIDs mengembalikan id aspek aktif di bawah (template, kategori),
// urut aspect_order. Tanpa adjustment & tanpa standard terpilih, semua aspek
// ikut (fail-open "pakai semua").
func (r *StandardResolver) GetActiveAspectIDs(templateID uuid.UUID, categoryCode string) ([]uuid.UUID, error) {
	var aspects []tmplModel.AspectModel
	err := r.DB.
		Joins("JOIN category_types ON category_types.category_type_id = aspects.aspect_category_type_id").
		Where("aspects.aspect_template_id = ? AND category_types.category_type_code = ?", templateID, categoryCode).
		Order("aspects.aspect_order ASC").
		Find(&aspects).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(aspects))
	adj := r.Adjustment(templateID)
	std := r.SelectedStandard(templateID)
	for _, a := range aspects {
		if adj == nil && std == nil {
			ids = append(ids, a.AspectID)
			continue
		}
		if r.IsAspectActive(templateID, a.AspectCode) {
			ids = append(ids, a.AspectID)
		}
	}
	return ids, nil
}
