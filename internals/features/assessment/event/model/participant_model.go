// file: internals/features/assessment/event/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantModel: peserta assessment dalam satu (event, formasi).
type ParticipantModel struct {
	ParticipantID                  uuid.UUID `gorm:"type:uuid;primaryKey;column:participant_id" json:"participant_id"`
	ParticipantEventID             uuid.UUID `gorm:"type:uuid;not null;index;column:participant_event_id" json:"participant_event_id"`
	ParticipantPositionFormationID uuid.UUID `gorm:"type:uuid;not null;index;column:participant_position_formation_id" json:"participant_position_formation_id"`
	ParticipantTestNumber          string    `gorm:"type:varchar(64);not null;column:participant_test_number" json:"participant_test_number"`
	ParticipantName                string    `gorm:"type:varchar(180);not null;column:participant_name" json:"participant_name"`

	ParticipantCreatedAt time.Time `gorm:"autoCreateTime;column:participant_created_at" json:"participant_created_at"`
	ParticipantUpdatedAt time.Time `gorm:"autoUpdateTime;column:participant_updated_at" json:"participant_updated_at"`
}

func (ParticipantModel) TableName() string { return "participants" }
