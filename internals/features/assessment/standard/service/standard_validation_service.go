// file: internals/features/assessment/standard/service/standard_validation_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	stdModel "spsp_backend/internals/features/assessment/standard/model"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
)

// ValidateStandardPayload memeriksa aturan domain payload standard/adjustment:
// bobot 0–100, bobot kategori berjumlah 100 kalau semua kategori template
// tercakup, rating 1–5. Hasil = map field → pesan (kosong = valid), tidak
// pernah dilempar sebagai exception — ini input user yang bisa dikoreksi.
func ValidateStandardPayload(
	db *gorm.DB,
	templateID uuid.UUID,
	categoryWeights map[string]int,
	aspectWeights map[string]int,
	aspectRatings map[string]float64,
	subAspectRatings map[string]float64,
) map[string][]string {
	errs := map[string][]string{}

	for code, weight := range categoryWeights {
		if weight < 0 || weight > 100 {
			key := "category_weights." + code
			errs[key] = append(errs[key], "bobot harus di antara 0 hingga 100")
		}
	}
	if len(categoryWeights) > 0 {
		var categories []tmplModel.CategoryTypeModel
		if err := db.
			Where("category_type_template_id = ?", templateID).
			Find(&categories).Error; err == nil && len(categories) > 0 {
			covered := 0
			sum := 0
			for _, category := range categories {
				if weight, ok := categoryWeights[category.CategoryTypeCode]; ok {
					covered++
					sum += weight
				}
			}
			if covered == len(categories) && sum != 100 {
				errs["category_weights"] = append(errs["category_weights"],
					fmt.Sprintf("total bobot kategori harus 100, sekarang %d", sum))
			}
		}
	}

	for code, weight := range aspectWeights {
		if weight < 0 || weight > 100 {
			key := "aspect_weights." + code
			errs[key] = append(errs[key], "bobot harus di antara 0 hingga 100")
		}
	}
	for code, rating := range aspectRatings {
		if rating < 1 || rating > 5 {
			key := "aspect_ratings." + code
			errs[key] = append(errs[key], "rating harus di antara 1 hingga 5")
		}
	}
	for code, rating := range subAspectRatings {
		if rating < 1 || rating > 5 {
			key := "sub_aspect_ratings." + code
			errs[key] = append(errs[key], "rating harus di antara 1 hingga 5")
		}
	}
	return errs
}

// ValidateCustomStandardConfigs: varian untuk payload custom standard
// (config per aspek/sub-aspek, bukan map datar).
func ValidateCustomStandardConfigs(
	db *gorm.DB,
	templateID uuid.UUID,
	categoryWeights map[string]int,
	aspectConfigs map[string]stdModel.CustomStandardAspectConfig,
	subAspectConfigs map[string]stdModel.CustomStandardSubAspectConfig,
) map[string][]string {
	aspectWeights := make(map[string]int, len(aspectConfigs))
	aspectRatings := map[string]float64{}
	for code, cfg := range aspectConfigs {
		aspectWeights[code] = cfg.Weight
		if cfg.Rating != nil {
			aspectRatings[code] = *cfg.Rating
		}
	}
	subAspectRatings := map[string]float64{}
	for code, cfg := range subAspectConfigs {
		if cfg.Rating != nil {
			subAspectRatings[code] = *cfg.Rating
		}
	}
	return ValidateStandardPayload(db, templateID, categoryWeights, aspectWeights, aspectRatings, subAspectRatings)
}
