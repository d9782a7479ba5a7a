// file: internals/features/assessment/template/model/template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateModel adalah rubrik penilaian (reference data, read-only bagi engine).
type TemplateModel struct {
	TemplateID            uuid.UUID `gorm:"type:uuid;primaryKey;column:template_id" json:"template_id"`
	TemplateInstitutionID uuid.UUID `gorm:"type:uuid;not null;index;column:template_institution_id" json:"template_institution_id"`
	TemplateCode          string    `gorm:"type:varchar(64);not null;uniqueIndex;column:template_code" json:"template_code"`
	TemplateName          string    `gorm:"type:varchar(180);not null;column:template_name" json:"template_name"`

	TemplateCreatedAt time.Time      `gorm:"autoCreateTime;column:template_created_at" json:"template_created_at"`
	TemplateUpdatedAt time.Time      `gorm:"autoUpdateTime;column:template_updated_at" json:"template_updated_at"`
	TemplateDeletedAt gorm.DeletedAt `gorm:"column:template_deleted_at;index" json:"template_deleted_at,omitempty"`

	CategoryTypes []CategoryTypeModel `gorm:"foreignKey:CategoryTypeTemplateID;references:TemplateID" json:"category_types,omitempty"`
}

func (TemplateModel) TableName() string { return "templates" }
