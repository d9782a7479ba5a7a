// file: internals/features/assessment/event/model/position_formation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PositionFormationModel: formasi jabatan "standar" yang dinilai dalam satu event.
type PositionFormationModel struct {
	PositionFormationID      uuid.UUID `gorm:"type:uuid;primaryKey;column:position_formation_id" json:"position_formation_id"`
	PositionFormationEventID uuid.UUID `gorm:"type:uuid;not null;index;column:position_formation_event_id" json:"position_formation_event_id"`
	PositionFormationName    string    `gorm:"type:varchar(180);not null;column:position_formation_name" json:"position_formation_name"`
	PositionFormationQuota   int       `gorm:"not null;default:0;column:position_formation_quota" json:"position_formation_quota"`

	PositionFormationCreatedAt time.Time `gorm:"autoCreateTime;column:position_formation_created_at" json:"position_formation_created_at"`
	PositionFormationUpdatedAt time.Time `gorm:"autoUpdateTime;column:position_formation_updated_at" json:"position_formation_updated_at"`
}

func (PositionFormationModel) TableName() string { return "position_formations" }
