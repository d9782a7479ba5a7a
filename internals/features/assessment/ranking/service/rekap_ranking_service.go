// file: internals/features/assessment/ranking/service/rekap_ranking_service.go
package service

import (
	"github.com/google/uuid"

	"spsp_backend/internals/features/assessment/ranking/dto"
	scoringSvc "spsp_backend/internals/features/assessment/scoring/service"
	helper "spsp_backend/internals/helpers"
)

// legacyConclusion: aturan tiga-arah LAMA yang masih dipakai rekap ranking dan
// MC mapping (warisan laporan versi sebelumnya, sengaja TIDAK disatukan dengan
// Classify di scoring — lihat DESIGN.md):
//
//	gap > 0            → Di Atas Standar
//	gap >= threshold   → Memenuhi Standar, threshold = −adjustedStandardScore × toleransi%
//	else               → Di Bawah Standar
func legacyConclusion(gap, adjustedStandardScore float64, tolerancePercentage int) string {
	threshold := -adjustedStandardScore * float64(tolerancePercentage) / 100
	switch {
	case gap > 0:
		return scoringSvc.ConclusionAboveStandard
	case gap >= threshold:
		return scoringSvc.ConclusionMeetsStandard
	default:
		return scoringSvc.ConclusionBelowStandard
	}
}

// GetRekapRanking: ringkasan lolos/tidak untuk satu (event, formasi, kategori).
// Lolos = kesimpulan legacy bukan "Di Bawah Standar". Tidak ada data →
// {total:0, passing:0, percentage:0}, bukan error.
func (s *RankingService) GetRekapRanking(
	eventID, positionFormationID, templateID uuid.UUID,
	categoryCode string,
	tolerancePercentage int,
) (*dto.RekapSummary, error) {
	entries, err := s.GetRankings(eventID, positionFormationID, templateID, categoryCode, tolerancePercentage)
	if err != nil {
		return nil, err
	}

	summary := &dto.RekapSummary{
		Total:       len(entries),
		Conclusions: map[string]int{},
	}
	for _, entry := range entries {
		conclusion := legacyConclusion(entry.AdjustedGap, entry.AdjustedStandardScore, tolerancePercentage)
		summary.Conclusions[conclusion]++
		if conclusion != scoringSvc.ConclusionBelowStandard {
			summary.Passing++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = helper.Round2(float64(summary.Passing) / float64(summary.Total) * 100)
	}
	return summary, nil
}
