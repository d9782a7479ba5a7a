// file: internals/features/assessment/ranking/service/ranking_service.go
package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "spsp_backend/internals/features/assessment/event/model"
	"spsp_backend/internals/features/assessment/ranking/dto"
	resultModel "spsp_backend/internals/features/assessment/result/model"
	scoringSvc "spsp_backend/internals/features/assessment/scoring/service"
	stdSvc "spsp_backend/internals/features/assessment/standard/service"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/session"
)

// RankingService memproduksi daftar peserta ter-ranking untuk satu kategori
// atau gabungan berbobot dua kategori. Semua path baca di sini degrade ke
// koleksi kosong (bukan error) karena dipanggil dari konteks display.
type RankingService struct {
	DB   *gorm.DB
	Sess session.Store
}

func NewRankingService(db *gorm.DB, sess session.Store) *RankingService {
	return &RankingService{DB: db, Sess: sess}
}

/* ========================= Baris assessment (varian ber-tag) ========================= */

// assessmentRow: satu varian seragam untuk dua jalur lama
// (baris agregat polos vs model ter-relasi penuh).
// subs == nil berarti varian Simple: pakai rating tersimpan langsung.
type assessmentRow struct {
	participantID uuid.UUID
	aspectID      uuid.UUID
	storedRating  float64
	subs          []subAssessmentRow // nil → Simple
}

type subAssessmentRow struct {
	subAspectID      uuid.UUID
	individualRating float64
}

// resolveIndividualRating: satu fungsi agregasi untuk kedua varian.
// Varian WithSubAspects: mean sub-assessment pada sub-aspek aktif; kalau
// tidak ada yang aktif, fallback ke rating tersimpan.
func resolveIndividualRating(row assessmentRow, snap stdSvc.AspectSnapshot) float64 {
	if row.subs == nil || !snap.HasSubAspects() {
		return row.storedRating
	}
	sum := 0.0
	n := 0
	for _, sub := range row.subs {
		subSnap, ok := lookupSubByID(snap, sub.subAspectID)
		if !ok || !subSnap.Active {
			continue
		}
		sum += sub.individualRating
		n++
	}
	if n == 0 {
		return row.storedRating
	}
	return helper.Round2(sum / float64(n))
}

func lookupSubByID(snap stdSvc.AspectSnapshot, id uuid.UUID) (stdSvc.SubAspectSnapshot, bool) {
	for _, sub := range snap.SubAspects {
		if sub.ID == id {
			return sub, true
		}
	}
	return stdSvc.SubAspectSnapshot{}, false
}

/* ========================= Ranking satu kategori ========================= */

// GetRankings: daftar peserta untuk (event, formasi, template, kategori),
// urut skor individu desc, tie-break nama asc, rank 1-based.
func (s *RankingService) GetRankings(
	eventID, positionFormationID, templateID uuid.UUID,
	categoryCode string,
	tolerancePercentage int,
) ([]dto.RankingEntry, error) {
	resolver := stdSvc.NewStandardResolver(s.DB, s.Sess)

	activeIDs, err := resolver.GetActiveAspectIDs(templateID, categoryCode)
	if err != nil {
		return nil, err
	}
	if len(activeIDs) == 0 {
		return []dto.RankingEntry{}, nil
	}

	snapshot, err := resolver.BuildStandardsSnapshot(templateID, activeIDs)
	if err != nil {
		return nil, err
	}

	// Gerbang optimasi: sub-assessment hanya di-load kalau ada override
	// level sub-aspek di session/standard terpilih. Tanpa override, nilai
	// tersimpan sudah benar.
	withSubs := false
	if adj := resolver.Adjustment(templateID); adj.HasSubAspectOverrides() {
		withSubs = true
	} else if std := resolver.SelectedStandard(templateID); std != nil && len(std.SubAspectConfigs()) > 0 {
		withSubs = true
	}

	rows, err := s.loadAssessmentRows(eventID, positionFormationID, activeIDs, withSubs)
	if err != nil {
		return nil, err
	}

	participants, err := s.loadParticipants(eventID, positionFormationID)
	if err != nil {
		return nil, err
	}

	// akumulasi total per peserta
	type accum struct {
		rating float64
		score  float64
	}
	totals := map[uuid.UUID]*accum{}
	for _, row := range rows {
		snap, ok := snapshot.ByID(row.aspectID)
		if !ok {
			continue
		}
		rating := resolveIndividualRating(row, snap)
		score := helper.Round2(rating * float64(snap.Weight))

		t, ok := totals[row.participantID]
		if !ok {
			t = &accum{}
			totals[row.participantID] = t
		}
		t.rating += rating
		t.score += score
	}

	// standar kategori dihitung sekali (bukan per peserta) dari snapshot
	factor := 1 - float64(tolerancePercentage)/100
	standardRating := 0.0
	standardScore := 0.0
	for _, snap := range snapshot.OrderedAspects() {
		rating := snap.EffectiveRating()
		standardRating += rating
		standardScore += helper.Round2(rating * float64(snap.Weight))
	}
	standardRating = helper.Round2(standardRating)
	standardScore = helper.Round2(standardScore)
	adjustedStandardRating := helper.Round2(standardRating * factor)
	adjustedStandardScore := helper.Round2(standardScore * factor)

	entries := make([]dto.RankingEntry, 0, len(totals))
	for participantID, t := range totals {
		p := participants[participantID]
		individualRating := helper.Round2(t.rating)
		individualScore := helper.Round2(t.score)
		originalGap := helper.Round2(individualScore - standardScore)
		adjustedGap := helper.Round2(individualScore - adjustedStandardScore)
		percentage := 0.0
		if adjustedStandardScore != 0 {
			percentage = helper.Round2(individualScore / adjustedStandardScore * 100)
		}
		entries = append(entries, dto.RankingEntry{
			ParticipantID:          participantID,
			ParticipantName:        p.ParticipantName,
			TestNumber:             p.ParticipantTestNumber,
			IndividualRating:       individualRating,
			IndividualScore:        individualScore,
			OriginalStandardRating: standardRating,
			OriginalStandardScore:  standardScore,
			AdjustedStandardRating: adjustedStandardRating,
			AdjustedStandardScore:  adjustedStandardScore,
			OriginalGap:            originalGap,
			AdjustedGap:            adjustedGap,
			Percentage:             percentage,
			Conclusion:             scoringSvc.Classify(originalGap, adjustedGap),
		})
	}

	sortRankingEntries(entries)
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// sortRankingEntries: skor desc, nama asc (deterministik).
func sortRankingEntries(entries []dto.RankingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IndividualScore != entries[j].IndividualScore {
			return entries[i].IndividualScore > entries[j].IndividualScore
		}
		return entries[i].ParticipantName < entries[j].ParticipantName
	})
}

func (s *RankingService) loadAssessmentRows(
	eventID, positionFormationID uuid.UUID,
	aspectIDs []uuid.UUID,
	withSubs bool,
) ([]assessmentRow, error) {
	query := s.DB.
		Where("aspect_assessment_event_id = ? AND aspect_assessment_position_formation_id = ? AND aspect_assessment_aspect_id IN ?",
			eventID, positionFormationID, aspectIDs)
	if withSubs {
		query = query.Preload("SubAssessments")
	}

	var assessments []resultModel.AspectAssessmentModel
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}

	rows := make([]assessmentRow, 0, len(assessments))
	for _, a := range assessments {
		row := assessmentRow{
			participantID: a.AspectAssessmentParticipantID,
			aspectID:      a.AspectAssessmentAspectID,
			storedRating:  a.AspectAssessmentIndividualRating,
		}
		if withSubs {
			row.subs = make([]subAssessmentRow, 0, len(a.SubAssessments))
			for _, sub := range a.SubAssessments {
				row.subs = append(row.subs, subAssessmentRow{
					subAspectID:      sub.SubAspectAssessmentSubAspectID,
					individualRating: sub.SubAspectAssessmentIndividualRating,
				})
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *RankingService) loadParticipants(eventID, positionFormationID uuid.UUID) (map[uuid.UUID]eventModel.ParticipantModel, error) {
	var participants []eventModel.ParticipantModel
	err := s.DB.
		Where("participant_event_id = ? AND participant_position_formation_id = ?", eventID, positionFormationID).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]eventModel.ParticipantModel, len(participants))
	for _, p := range participants {
		out[p.ParticipantID] = p
	}
	return out, nil
}

/* ========================= Ranking gabungan ========================= */

// GetCombinedRankings: leaderboard lintas kategori. Jalankan ranking potensi &
// kompetensi terpisah, inner-join per peserta (yang hilang di salah satu
// kategori di-drop), total berbobot, lalu rank ulang.
// Ini metode kanonik — call site lain yang menjumlah sendiri wajib
// menghasilkan angka identik.
func (s *RankingService) GetCombinedRankings(
	eventID, positionFormationID, templateID uuid.UUID,
	tolerancePercentage int,
) ([]dto.CombinedRankingEntry, error) {
	potensi, err := s.GetRankings(eventID, positionFormationID, templateID, tmplModel.CategoryCodePotensi, tolerancePercentage)
	if err != nil {
		return nil, err
	}
	kompetensi, err := s.GetRankings(eventID, positionFormationID, templateID, tmplModel.CategoryCodeKompetensi, tolerancePercentage)
	if err != nil {
		return nil, err
	}

	resolver := stdSvc.NewStandardResolver(s.DB, s.Sess)
	potensiWeight := resolver.GetCategoryWeight(templateID, tmplModel.CategoryCodePotensi)
	kompetensiWeight := resolver.GetCategoryWeight(templateID, tmplModel.CategoryCodeKompetensi)

	kompetensiByID := make(map[uuid.UUID]dto.RankingEntry, len(kompetensi))
	for _, entry := range kompetensi {
		kompetensiByID[entry.ParticipantID] = entry
	}

	entries := make([]dto.CombinedRankingEntry, 0, len(potensi))
	for _, p := range potensi {
		k, ok := kompetensiByID[p.ParticipantID]
		if !ok {
			continue
		}
		total := helper.Round2(
			p.IndividualScore*float64(potensiWeight)/100 +
				k.IndividualScore*float64(kompetensiWeight)/100)

		standardTotal := helper.Round2(
			p.OriginalStandardScore*float64(potensiWeight)/100 +
				k.OriginalStandardScore*float64(kompetensiWeight)/100)
		adjustedTotal := helper.Round2(
			p.AdjustedStandardScore*float64(potensiWeight)/100 +
				k.AdjustedStandardScore*float64(kompetensiWeight)/100)
		originalGap := helper.Round2(total - standardTotal)
		adjustedGap := helper.Round2(total - adjustedTotal)

		entries = append(entries, dto.CombinedRankingEntry{
			ParticipantID:    p.ParticipantID,
			ParticipantName:  p.ParticipantName,
			TestNumber:       p.TestNumber,
			PotensiScore:     p.IndividualScore,
			KompetensiScore:  k.IndividualScore,
			PotensiWeight:    potensiWeight,
			KompetensiWeight: kompetensiWeight,
			TotalScore:       total,
			Conclusion:       scoringSvc.Classify(originalGap, adjustedGap),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].ParticipantName < entries[j].ParticipantName
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
