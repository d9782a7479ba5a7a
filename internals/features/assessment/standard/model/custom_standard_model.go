// file: internals/features/assessment/standard/model/custom_standard_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomStandardAspectConfig: konfigurasi per aspek dalam custom standard.
// Rating hanya relevan untuk aspek tanpa sub-aspek; Active nil = tidak diatur
// (fallback ke default "aktif").
type CustomStandardAspectConfig struct {
	Weight int      `json:"weight"`
	Active *bool    `json:"active,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

// CustomStandardSubAspectConfig: konfigurasi per sub-aspek.
type CustomStandardSubAspectConfig struct {
	Rating *float64 `json:"rating,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// CustomStandardModel: profil standar alternatif yang dipersist per
// (institusi, template), dipilih lewat pointer session
// selected_standard.<templateId>. Prioritasnya di bawah adjustment session,
// di atas default template.
type CustomStandardModel struct {
	CustomStandardID            uuid.UUID `gorm:"type:uuid;primaryKey;column:custom_standard_id" json:"custom_standard_id"`
	CustomStandardInstitutionID uuid.UUID `gorm:"type:uuid;not null;index;column:custom_standard_institution_id" json:"custom_standard_institution_id"`
	CustomStandardTemplateID    uuid.UUID `gorm:"type:uuid;not null;index;column:custom_standard_template_id" json:"custom_standard_template_id"`
	CustomStandardName          string    `gorm:"type:varchar(180);not null;column:custom_standard_name" json:"custom_standard_name"`

	CustomStandardCategoryWeights  datatypes.JSONType[map[string]int]                           `gorm:"column:custom_standard_category_weights" json:"custom_standard_category_weights"`
	CustomStandardAspectConfigs    datatypes.JSONType[map[string]CustomStandardAspectConfig]    `gorm:"column:custom_standard_aspect_configs" json:"custom_standard_aspect_configs"`
	CustomStandardSubAspectConfigs datatypes.JSONType[map[string]CustomStandardSubAspectConfig] `gorm:"column:custom_standard_sub_aspect_configs" json:"custom_standard_sub_aspect_configs"`

	CustomStandardCreatedAt time.Time      `gorm:"autoCreateTime;column:custom_standard_created_at" json:"custom_standard_created_at"`
	CustomStandardUpdatedAt time.Time      `gorm:"autoUpdateTime;column:custom_standard_updated_at" json:"custom_standard_updated_at"`
	CustomStandardDeletedAt gorm.DeletedAt `gorm:"column:custom_standard_deleted_at;index" json:"custom_standard_deleted_at,omitempty"`
}

func (CustomStandardModel) TableName() string { return "custom_standards" }

// CategoryWeights mengembalikan map bobot kategori (nil-safe).
func (m *CustomStandardModel) CategoryWeights() map[string]int {
	return m.CustomStandardCategoryWeights.Data()
}

// AspectConfigs mengembalikan map konfigurasi aspek (nil-safe).
func (m *CustomStandardModel) AspectConfigs() map[string]CustomStandardAspectConfig {
	return m.CustomStandardAspectConfigs.Data()
}

// SubAspectConfigs mengembalikan map konfigurasi sub-aspek (nil-safe).
func (m *CustomStandardModel) SubAspectConfigs() map[string]CustomStandardSubAspectConfig {
	return m.CustomStandardSubAspectConfigs.Data()
}
