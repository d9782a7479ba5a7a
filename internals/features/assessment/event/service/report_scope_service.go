// file: internals/features/assessment/event/service/report_scope_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "spsp_backend/internals/features/assessment/event/model"
	"spsp_backend/internals/helpers/session"
)

// ErrScopeIncomplete: scope laporan tidak bisa ditentukan dari query
// maupun filter session.
var ErrScopeIncomplete = errors.New("scope laporan tidak lengkap")

// ReportScope: konteks minimal semua endpoint laporan — event mana,
// formasi mana, dan template penilaian event tersebut.
type ReportScope struct {
	EventID             uuid.UUID
	PositionFormationID uuid.UUID
	TemplateID          uuid.UUID
	EventCode           string
}

// ResolveReportScope menentukan (event, formasi, template) untuk request
// laporan. Query param menang; kalau kosong, jatuh ke filter yang tersimpan
// di session (filter.event_code / filter.position_formation_id).
func ResolveReportScope(
	db *gorm.DB,
	sess session.Store,
	eventIDRaw, positionFormationIDRaw string,
) (*ReportScope, error) {
	var event model.EventModel

	switch {
	case strings.TrimSpace(eventIDRaw) != "":
		eventID, err := uuid.Parse(strings.TrimSpace(eventIDRaw))
		if err != nil {
			return nil, fmt.Errorf("%w: event_id tidak valid", ErrScopeIncomplete)
		}
		if err := db.First(&event, "event_id = ?", eventID).Error; err != nil {
			return nil, fmt.Errorf("event %s: %w", eventID, err)
		}
	default:
		code, _ := sess.Get(session.FilterEventCodeKey, "").(string)
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%w: event_id atau filter event_code wajib ada", ErrScopeIncomplete)
		}
		if err := db.First(&event, "event_code = ?", code).Error; err != nil {
			return nil, fmt.Errorf("event %q: %w", code, err)
		}
	}

	formationRaw := strings.TrimSpace(positionFormationIDRaw)
	if formationRaw == "" {
		formationRaw, _ = sess.Get(session.FilterPositionFormationKey, "").(string)
	}
	if formationRaw == "" {
		return nil, fmt.Errorf("%w: position_formation_id wajib ada", ErrScopeIncomplete)
	}
	formationID, err := uuid.Parse(formationRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: position_formation_id tidak valid", ErrScopeIncomplete)
	}

	return &ReportScope{
		EventID:             event.EventID,
		PositionFormationID: formationID,
		TemplateID:          event.EventTemplateID,
		EventCode:           event.EventCode,
	}, nil
}
