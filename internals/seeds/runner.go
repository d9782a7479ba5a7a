package seeds

import (
	interpretations "spsp_backend/internals/seeds/narrative/interpretations"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Narrative
	interpretations.SeedInterpretationsFromJSON(db, "internals/seeds/narrative/interpretations/data_interpretations.json")
}
