// file: internals/features/assessment/narrative/model/rating_interpretation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InterpretationTypeAspect    = "aspect"
	InterpretationTypeSubAspect = "sub_aspect"
)

// RatingInterpretationModel: template kalimat interpretasi per nilai rating 1–5.
// Name NULL = template generik (berlaku untuk semua nama pada type+rating itu).
type RatingInterpretationModel struct {
	RatingInterpretationID       uuid.UUID `gorm:"type:uuid;primaryKey;column:rating_interpretation_id" json:"rating_interpretation_id"`
	RatingInterpretationType     string    `gorm:"type:varchar(32);not null;index;column:rating_interpretation_type" json:"rating_interpretation_type"`
	RatingInterpretationName     *string   `gorm:"type:varchar(180);index;column:rating_interpretation_name" json:"rating_interpretation_name,omitempty"`
	RatingInterpretationRating   int       `gorm:"not null;index;column:rating_interpretation_rating" json:"rating_interpretation_rating"`
	RatingInterpretationTemplate string    `gorm:"type:text;not null;column:rating_interpretation_template" json:"rating_interpretation_template"`

	RatingInterpretationCreatedAt time.Time `gorm:"autoCreateTime;column:rating_interpretation_created_at" json:"rating_interpretation_created_at"`
	RatingInterpretationUpdatedAt time.Time `gorm:"autoUpdateTime;column:rating_interpretation_updated_at" json:"rating_interpretation_updated_at"`
}

func (RatingInterpretationModel) TableName() string { return "rating_interpretations" }
