// file: internals/features/assessment/scoring/service/score_aggregator_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "spsp_backend/internals/features/assessment/event/model"
	resultModel "spsp_backend/internals/features/assessment/result/model"
	"spsp_backend/internals/features/assessment/scoring/dto"
	stdSvc "spsp_backend/internals/features/assessment/standard/service"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/session"
)

// ScoreAggregator menghitung ulang rating/score individu & standar bottom-up:
// sub-aspek → aspek → kategori → final, semuanya sadar-toleransi.
// Bobot dan rating selalu diambil dari snapshot standar (hasil resolver),
// bukan dari nilai tersimpan di baris assessment.
type ScoreAggregator struct {
	DB   *gorm.DB
	Sess session.Store
}

func NewScoreAggregator(db *gorm.DB, sess session.Store) *ScoreAggregator {
	return &ScoreAggregator{DB: db, Sess: sess}
}

// toleranceFactor = 1 − toleransi/100 (toleransi menyusutkan standar).
func toleranceFactor(tolerancePercentage int) float64 {
	return 1 - float64(tolerancePercentage)/100
}

/* ========================= Aspek ========================= */

// RecomputeAspect menghitung ulang satu aspek dari snapshot + baris assessment.
//   - Aspek ber-sub-aspek: rating standar = mean sub-aspek aktif, rating individu
//     = mean sub-assessment pada set aktif YANG SAMA (sub nonaktif keluar dari
//     pembilang dan penyebut). Nol sub aktif → pakai nilai tersimpan langsung.
//   - Aspek tanpa sub-aspek: rating standar dari snapshot, rating individu dari
//     nilai tersimpan apa adanya.
func (s *ScoreAggregator) RecomputeAspect(
	assessment *resultModel.AspectAssessmentModel,
	snap stdSvc.AspectSnapshot,
	tolerancePercentage int,
) dto.AspectResult {
	factor := toleranceFactor(tolerancePercentage)

	standardRating := snap.EffectiveRating()
	individualRating := assessment.AspectAssessmentIndividualRating

	var subResults []dto.SubAspectResult
	if snap.HasSubAspects() {
		sum := 0.0
		n := 0
		for _, subAssessment := range assessment.SubAssessments {
			subSnap, ok := snap.SubAspects[subCodeOf(snap, subAssessment.SubAspectAssessmentSubAspectID)]
			if !ok {
				continue
			}
			subResults = append(subResults, dto.SubAspectResult{
				SubAspectID:      subSnap.ID,
				SubAspectCode:    subSnap.Code,
				SubAspectName:    subSnap.Name,
				StandardRating:   subSnap.Rating,
				IndividualRating: subAssessment.SubAspectAssessmentIndividualRating,
				Active:           subSnap.Active,
			})
			if subSnap.Active {
				sum += subAssessment.SubAspectAssessmentIndividualRating
				n++
			}
		}
		if n > 0 {
			individualRating = helper.Round2(sum / float64(n))
		}
		// n == 0 → fallback nilai tersimpan (jangan bagi nol)
	}

	weight := float64(snap.Weight)
	standardScore := helper.Round2(standardRating * weight)
	individualScore := helper.Round2(individualRating * weight)

	adjustedStandardRating := helper.Round2(standardRating * factor)
	adjustedStandardScore := helper.Round2(standardScore * factor)

	originalGapRating := helper.Round2(individualRating - standardRating)
	originalGapScore := helper.Round2(individualScore - standardScore)
	gapRating := helper.Round2(individualRating - adjustedStandardRating)
	gapScore := helper.Round2(individualScore - adjustedStandardScore)

	return dto.AspectResult{
		AspectID:               snap.ID,
		AspectCode:             snap.Code,
		AspectName:             snap.Name,
		Weight:                 snap.Weight,
		IndividualRating:       individualRating,
		IndividualScore:        individualScore,
		StandardRating:         standardRating,
		StandardScore:          standardScore,
		AdjustedStandardRating: adjustedStandardRating,
		AdjustedStandardScore:  adjustedStandardScore,
		OriginalGapRating:      originalGapRating,
		OriginalGapScore:       originalGapScore,
		GapRating:              gapRating,
		GapScore:               gapScore,
		Conclusion:             Classify(originalGapScore, gapScore),
		SubAspects:             subResults,
	}
}

// subCodeOf: cari kode sub-aspek dari id-nya di snapshot aspek.
func subCodeOf(snap stdSvc.AspectSnapshot, subAspectID uuid.UUID) string {
	for code, sub := range snap.SubAspects {
		if sub.ID == subAspectID {
			return code
		}
	}
	return ""
}

/* ========================= Kategori ========================= */

// GetCategoryAssessment menghitung detail satu kategori untuk satu peserta.
// Peserta/template yang tidak ada → error NotFound; kategori tanpa aspek →
// hasil kosong bernilai nol (bukan error), supaya laporan bisa render "no data".
func (s *ScoreAggregator) GetCategoryAssessment(
	eventID, positionFormationID, templateID, participantID uuid.UUID,
	categoryCode string,
	tolerancePercentage int,
) (*dto.CategoryAssessmentResult, error) {
	var participant eventModel.ParticipantModel
	if err := s.DB.First(&participant, "participant_id = ?", participantID).Error; err != nil {
		return nil, fmt.Errorf("peserta %s: %w", participantID, err)
	}

	resolver := stdSvc.NewStandardResolver(s.DB, s.Sess)

	result := &dto.CategoryAssessmentResult{
		CategoryCode:   categoryCode,
		CategoryWeight: resolver.GetCategoryWeight(templateID, categoryCode),
		Aspects:        []dto.AspectResult{},
	}
	var category tmplModel.CategoryTypeModel
	if err := s.DB.
		Where("category_type_template_id = ? AND category_type_code = ?", templateID, categoryCode).
		First(&category).Error; err == nil {
		result.CategoryName = category.CategoryTypeName
	}

	activeIDs, err := resolver.GetActiveAspectIDs(templateID, categoryCode)
	if err != nil {
		return nil, err
	}
	if len(activeIDs) == 0 {
		return result, nil
	}

	snapshot, err := resolver.BuildStandardsSnapshot(templateID, activeIDs)
	if err != nil {
		return nil, err
	}

	var assessments []resultModel.AspectAssessmentModel
	err = s.DB.
		Preload("SubAssessments").
		Where("aspect_assessment_event_id = ? AND aspect_assessment_position_formation_id = ? AND aspect_assessment_participant_id = ? AND aspect_assessment_aspect_id IN ?",
			eventID, positionFormationID, participantID, activeIDs).
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	byAspectID := make(map[uuid.UUID]*resultModel.AspectAssessmentModel, len(assessments))
	for i := range assessments {
		byAspectID[assessments[i].AspectAssessmentAspectID] = &assessments[i]
	}

	for _, snap := range snapshot.OrderedAspects() {
		assessment, ok := byAspectID[snap.ID]
		if !ok {
			continue
		}
		aspectResult := s.RecomputeAspect(assessment, snap, tolerancePercentage)
		result.Aspects = append(result.Aspects, aspectResult)

		result.TotalIndividualRating += aspectResult.IndividualRating
		result.TotalIndividualScore += aspectResult.IndividualScore
		result.TotalStandardRating += aspectResult.StandardRating
		result.TotalStandardScore += aspectResult.StandardScore
		result.TotalAdjustedStandardRating += aspectResult.AdjustedStandardRating
		result.TotalAdjustedStandardScore += aspectResult.AdjustedStandardScore
		result.TotalOriginalGapRating += aspectResult.OriginalGapRating
		result.TotalOriginalGapScore += aspectResult.OriginalGapScore
		result.TotalGapRating += aspectResult.GapRating
		result.TotalGapScore += aspectResult.GapScore
	}

	result.TotalIndividualRating = helper.Round2(result.TotalIndividualRating)
	result.TotalIndividualScore = helper.Round2(result.TotalIndividualScore)
	result.TotalStandardRating = helper.Round2(result.TotalStandardRating)
	result.TotalStandardScore = helper.Round2(result.TotalStandardScore)
	result.TotalAdjustedStandardRating = helper.Round2(result.TotalAdjustedStandardRating)
	result.TotalAdjustedStandardScore = helper.Round2(result.TotalAdjustedStandardScore)
	result.TotalOriginalGapRating = helper.Round2(result.TotalOriginalGapRating)
	result.TotalOriginalGapScore = helper.Round2(result.TotalOriginalGapScore)
	result.TotalGapRating = helper.Round2(result.TotalGapRating)
	result.TotalGapScore = helper.Round2(result.TotalGapScore)

	categoryWeight := float64(result.CategoryWeight) / 100
	result.WeightedStandardScore = helper.Round2(result.TotalAdjustedStandardScore * categoryWeight)
	result.WeightedIndividualScore = helper.Round2(result.TotalIndividualScore * categoryWeight)
	result.WeightedGapScore = helper.Round2(result.WeightedIndividualScore - result.WeightedStandardScore)

	// total gap sudah memuat toleransi
	result.Conclusion = Classify(result.TotalOriginalGapScore, result.TotalGapScore)
	return result, nil
}

/* ========================= Final ========================= */

// GetFinalAssessment menggabungkan total potensi & kompetensi memakai bobot
// kategori hasil resolve. Bobot idealnya berjumlah 100, tapi engine tidak
// hard-fail kalau tidak — dihitung dengan bobot apa adanya.
func (s *ScoreAggregator) GetFinalAssessment(
	eventID, positionFormationID, templateID, participantID uuid.UUID,
	tolerancePercentage int,
) (*dto.FinalAssessmentResult, error) {
	var participant eventModel.ParticipantModel
	if err := s.DB.First(&participant, "participant_id = ?", participantID).Error; err != nil {
		return nil, fmt.Errorf("peserta %s: %w", participantID, err)
	}
	var template tmplModel.TemplateModel
	if err := s.DB.First(&template, "template_id = ?", templateID).Error; err != nil {
		return nil, fmt.Errorf("template %s: %w", templateID, err)
	}

	result := &dto.FinalAssessmentResult{
		ParticipantID:   participant.ParticipantID,
		ParticipantName: participant.ParticipantName,
	}

	for _, categoryCode := range []string{tmplModel.CategoryCodePotensi, tmplModel.CategoryCodeKompetensi} {
		category, err := s.GetCategoryAssessment(
			eventID, positionFormationID, templateID, participantID, categoryCode, tolerancePercentage)
		if err != nil {
			return nil, err
		}
		result.Categories = append(result.Categories, *category)

		weight := float64(category.CategoryWeight) / 100
		result.TotalIndividualScore += category.TotalIndividualScore * weight
		result.TotalStandardScore += category.TotalAdjustedStandardScore * weight
		result.TotalOriginalStandardScore += category.TotalStandardScore * weight
	}

	result.TotalIndividualScore = helper.Round2(result.TotalIndividualScore)
	result.TotalStandardScore = helper.Round2(result.TotalStandardScore)
	result.TotalOriginalStandardScore = helper.Round2(result.TotalOriginalStandardScore)

	result.OriginalGapScore = helper.Round2(result.TotalIndividualScore - result.TotalOriginalStandardScore)
	result.GapScore = helper.Round2(result.TotalIndividualScore - result.TotalStandardScore)

	if result.TotalStandardScore != 0 {
		result.AchievementPercentage = helper.Round2(result.TotalIndividualScore / result.TotalStandardScore * 100)
	}

	result.Conclusion = Classify(result.OriginalGapScore, result.GapScore)
	result.PotentialConclusion = ClassifyPotential(result.OriginalGapScore, result.GapScore)
	return result, nil
}
