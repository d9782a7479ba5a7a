// file: internals/features/assessment/result/model/aspect_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AspectAssessmentModel: satu baris per (peserta, aspek) dalam scope (event, formasi).
// Kolom standard_* adalah snapshot tersimpan; engine selalu lebih memilih
// perhitungan ulang lewat resolver standar.
type AspectAssessmentModel struct {
	AspectAssessmentID                  uuid.UUID `gorm:"type:uuid;primaryKey;column:aspect_assessment_id" json:"aspect_assessment_id"`
	AspectAssessmentEventID             uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_assessment_event_id" json:"aspect_assessment_event_id"`
	AspectAssessmentPositionFormationID uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_assessment_position_formation_id" json:"aspect_assessment_position_formation_id"`
	AspectAssessmentParticipantID       uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_assessment_participant_id" json:"aspect_assessment_participant_id"`
	AspectAssessmentAspectID            uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_assessment_aspect_id" json:"aspect_assessment_aspect_id"`

	AspectAssessmentIndividualRating float64 `gorm:"type:numeric(6,2);not null;default:0;column:aspect_assessment_individual_rating" json:"aspect_assessment_individual_rating"`
	AspectAssessmentIndividualScore  float64 `gorm:"type:numeric(8,2);not null;default:0;column:aspect_assessment_individual_score" json:"aspect_assessment_individual_score"`
	AspectAssessmentStandardRating   float64 `gorm:"type:numeric(6,2);not null;default:0;column:aspect_assessment_standard_rating" json:"aspect_assessment_standard_rating"`
	AspectAssessmentStandardScore    float64 `gorm:"type:numeric(8,2);not null;default:0;column:aspect_assessment_standard_score" json:"aspect_assessment_standard_score"`

	AspectAssessmentCreatedAt time.Time `gorm:"autoCreateTime;column:aspect_assessment_created_at" json:"aspect_assessment_created_at"`
	AspectAssessmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:aspect_assessment_updated_at" json:"aspect_assessment_updated_at"`

	SubAssessments []SubAspectAssessmentModel `gorm:"foreignKey:SubAspectAssessmentAspectAssessmentID;references:AspectAssessmentID" json:"sub_assessments,omitempty"`
}

func (AspectAssessmentModel) TableName() string { return "aspect_assessments" }
