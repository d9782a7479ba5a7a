// file: internals/features/assessment/result/model/sub_aspect_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubAspectAssessmentModel: satu baris per (peserta, sub-aspek).
// Pada data yang sehat, set baris ini menutup semua sub-aspek milik aspek induknya.
type SubAspectAssessmentModel struct {
	SubAspectAssessmentID                 uuid.UUID `gorm:"type:uuid;primaryKey;column:sub_aspect_assessment_id" json:"sub_aspect_assessment_id"`
	SubAspectAssessmentAspectAssessmentID uuid.UUID `gorm:"type:uuid;not null;index;column:sub_aspect_assessment_aspect_assessment_id" json:"sub_aspect_assessment_aspect_assessment_id"`
	SubAspectAssessmentSubAspectID        uuid.UUID `gorm:"type:uuid;not null;index;column:sub_aspect_assessment_sub_aspect_id" json:"sub_aspect_assessment_sub_aspect_id"`

	SubAspectAssessmentIndividualRating float64 `gorm:"type:numeric(6,2);not null;default:0;column:sub_aspect_assessment_individual_rating" json:"sub_aspect_assessment_individual_rating"`

	SubAspectAssessmentCreatedAt time.Time `gorm:"autoCreateTime;column:sub_aspect_assessment_created_at" json:"sub_aspect_assessment_created_at"`
	SubAspectAssessmentUpdatedAt time.Time `gorm:"autoUpdateTime;column:sub_aspect_assessment_updated_at" json:"sub_aspect_assessment_updated_at"`
}

func (SubAspectAssessmentModel) TableName() string { return "sub_aspect_assessments" }
