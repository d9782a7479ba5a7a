// file: internals/features/assessment/ranking/service/ranking_mc_mapping_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "spsp_backend/internals/features/assessment/event/model"
	"spsp_backend/internals/features/assessment/ranking/dto"
	scoringSvc "spsp_backend/internals/features/assessment/scoring/service"
)

// GetMcMapping: ranking gabungan untuk sidang Management Committee.
// Kesimpulan memakai aturan legacy (sama dengan rekap), plus flag rekomendasi
// berdasarkan kuota formasi: peserta non-"Di Bawah Standar" dalam kuota → true.
func (s *RankingService) GetMcMapping(
	eventID, positionFormationID, templateID uuid.UUID,
	categoryCode string,
	tolerancePercentage int,
) ([]dto.McMappingEntry, error) {
	rankings, err := s.GetRankings(eventID, positionFormationID, templateID, categoryCode, tolerancePercentage)
	if err != nil {
		return nil, err
	}

	quota := 0
	var formation eventModel.PositionFormationModel
	err = s.DB.First(&formation, "position_formation_id = ?", positionFormationID).Error
	if err == nil {
		quota = formation.PositionFormationQuota
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entries := make([]dto.McMappingEntry, 0, len(rankings))
	for _, r := range rankings {
		conclusion := legacyConclusion(r.AdjustedGap, r.AdjustedStandardScore, tolerancePercentage)
		recommended := conclusion != scoringSvc.ConclusionBelowStandard && (quota <= 0 || r.Rank <= quota)
		entries = append(entries, dto.McMappingEntry{
			Rank:                  r.Rank,
			ParticipantID:         r.ParticipantID,
			ParticipantName:       r.ParticipantName,
			TestNumber:            r.TestNumber,
			IndividualScore:       r.IndividualScore,
			AdjustedStandardScore: r.AdjustedStandardScore,
			Gap:                   r.AdjustedGap,
			Conclusion:            conclusion,
			Recommended:           recommended,
		})
	}
	return entries, nil
}
