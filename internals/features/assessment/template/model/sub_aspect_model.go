// file: internals/features/assessment/template/model/sub_aspect_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubAspectModel: butir di bawah satu aspek. Rating standar 1–5.
type SubAspectModel struct {
	SubAspectID       uuid.UUID `gorm:"type:uuid;primaryKey;column:sub_aspect_id" json:"sub_aspect_id"`
	SubAspectAspectID uuid.UUID `gorm:"type:uuid;not null;index;column:sub_aspect_aspect_id" json:"sub_aspect_aspect_id"`

	SubAspectCode           string  `gorm:"type:varchar(64);not null;index;column:sub_aspect_code" json:"sub_aspect_code"`
	SubAspectName           string  `gorm:"type:varchar(180);not null;column:sub_aspect_name" json:"sub_aspect_name"`
	SubAspectStandardRating float64 `gorm:"type:numeric(4,2);not null;default:0;column:sub_aspect_standard_rating" json:"sub_aspect_standard_rating"`
	SubAspectOrder          int     `gorm:"not null;default:0;column:sub_aspect_order" json:"sub_aspect_order"`

	SubAspectCreatedAt time.Time `gorm:"autoCreateTime;column:sub_aspect_created_at" json:"sub_aspect_created_at"`
	SubAspectUpdatedAt time.Time `gorm:"autoUpdateTime;column:sub_aspect_updated_at" json:"sub_aspect_updated_at"`
}

func (SubAspectModel) TableName() string { return "sub_aspects" }
