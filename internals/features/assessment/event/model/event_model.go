// file: internals/features/assessment/event/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel: satu kegiatan assessment center (batch pelaksanaan).
type EventModel struct {
	EventID            uuid.UUID `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`
	EventInstitutionID uuid.UUID `gorm:"type:uuid;not null;index;column:event_institution_id" json:"event_institution_id"`
	EventTemplateID    uuid.UUID `gorm:"type:uuid;not null;index;column:event_template_id" json:"event_template_id"`
	EventCode          string    `gorm:"type:varchar(64);not null;uniqueIndex;column:event_code" json:"event_code"`
	EventName          string    `gorm:"type:varchar(180);not null;column:event_name" json:"event_name"`
	EventYear          int       `gorm:"not null;default:0;column:event_year" json:"event_year"`

	EventCreatedAt time.Time      `gorm:"autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
