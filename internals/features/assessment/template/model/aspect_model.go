// file: internals/features/assessment/template/model/aspect_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AspectModel: item kompetensi/trait di bawah satu kategori.
// - aspect_standard_rating dipakai hanya ketika aspek TIDAK punya sub-aspek;
//   kalau punya, rating efektif = rata-rata sub-aspek aktif.
// - aspect_weight_percentage: bobot antar aspek se-kategori idealnya berjumlah 100.
type AspectModel struct {
	AspectID             uuid.UUID `gorm:"type:uuid;primaryKey;column:aspect_id" json:"aspect_id"`
	AspectTemplateID     uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_template_id" json:"aspect_template_id"`
	AspectCategoryTypeID uuid.UUID `gorm:"type:uuid;not null;index;column:aspect_category_type_id" json:"aspect_category_type_id"`

	AspectCode             string  `gorm:"type:varchar(64);not null;index;column:aspect_code" json:"aspect_code"`
	AspectName             string  `gorm:"type:varchar(180);not null;column:aspect_name" json:"aspect_name"`
	AspectWeightPercentage int     `gorm:"not null;default:0;column:aspect_weight_percentage" json:"aspect_weight_percentage"`
	AspectStandardRating   float64 `gorm:"type:numeric(4,2);not null;default:0;column:aspect_standard_rating" json:"aspect_standard_rating"`
	AspectOrder            int     `gorm:"not null;default:0;column:aspect_order" json:"aspect_order"`

	AspectCreatedAt time.Time `gorm:"autoCreateTime;column:aspect_created_at" json:"aspect_created_at"`
	AspectUpdatedAt time.Time `gorm:"autoUpdateTime;column:aspect_updated_at" json:"aspect_updated_at"`

	SubAspects []SubAspectModel `gorm:"foreignKey:SubAspectAspectID;references:AspectID" json:"sub_aspects,omitempty"`
}

func (AspectModel) TableName() string { return "aspects" }

// HasSubAspects: true jika relasi SubAspects sudah di-preload dan tidak kosong.
func (a *AspectModel) HasSubAspects() bool { return len(a.SubAspects) > 0 }
