package interpretations

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spsp_backend/internals/features/assessment/narrative/model"
)

type InterpretationSeed struct {
	Type     string  `json:"rating_interpretation_type"`
	Name     *string `json:"rating_interpretation_name"`
	Rating   int     `json:"rating_interpretation_rating"`
	Template string  `json:"rating_interpretation_template"`
}

func SeedInterpretationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []InterpretationSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, seed := range seeds {
		query := db.Where(
			"rating_interpretation_type = ? AND rating_interpretation_rating = ?",
			seed.Type, seed.Rating,
		)
		if seed.Name == nil {
			query = query.Where("rating_interpretation_name IS NULL")
		} else {
			query = query.Where("rating_interpretation_name = ?", *seed.Name)
		}

		var existing model.RatingInterpretationModel
		if err := query.First(&existing).Error; err == nil {
			log.Printf("ℹ️ Interpretasi %s/%d sudah ada, lewati...", seed.Type, seed.Rating)
			continue
		}

		row := model.RatingInterpretationModel{
			RatingInterpretationID:       uuid.New(),
			RatingInterpretationType:     seed.Type,
			RatingInterpretationName:     seed.Name,
			RatingInterpretationRating:   seed.Rating,
			RatingInterpretationTemplate: seed.Template,
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert %s/%d: %v", seed.Type, seed.Rating, err)
		} else {
			log.Printf("✅ Berhasil insert %s/%d", seed.Type, seed.Rating)
		}
	}
}
