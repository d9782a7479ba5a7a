// file: internals/features/assessment/template/model/category_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Kode kategori yang dikenal engine (dua grouping teratas aspek).
const (
	CategoryCodePotensi    = "potensi"
	CategoryCodeKompetensi = "kompetensi"
)

// CategoryTypeModel: kategori teratas sebuah template (potensi/kompetensi).
// Bobot antar kategori dalam satu template harus berjumlah 100.
type CategoryTypeModel struct {
	CategoryTypeID               uuid.UUID `gorm:"type:uuid;primaryKey;column:category_type_id" json:"category_type_id"`
	CategoryTypeTemplateID       uuid.UUID `gorm:"type:uuid;not null;index;column:category_type_template_id" json:"category_type_template_id"`
	CategoryTypeCode             string    `gorm:"type:varchar(32);not null;index;column:category_type_code" json:"category_type_code"`
	CategoryTypeName             string    `gorm:"type:varchar(120);not null;column:category_type_name" json:"category_type_name"`
	CategoryTypeWeightPercentage int       `gorm:"not null;default:0;column:category_type_weight_percentage" json:"category_type_weight_percentage"`

	CategoryTypeCreatedAt time.Time `gorm:"autoCreateTime;column:category_type_created_at" json:"category_type_created_at"`
	CategoryTypeUpdatedAt time.Time `gorm:"autoUpdateTime;column:category_type_updated_at" json:"category_type_updated_at"`

	Aspects []AspectModel `gorm:"foreignKey:AspectCategoryTypeID;references:CategoryTypeID" json:"aspects,omitempty"`
}

func (CategoryTypeModel) TableName() string { return "category_types" }
