// file: internals/features/assessment/talent/service/nine_box_service.go
package service

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"

	eventModel "spsp_backend/internals/features/assessment/event/model"
	stdSvc "spsp_backend/internals/features/assessment/standard/service"
	"spsp_backend/internals/features/assessment/talent/dto"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	helper "spsp_backend/internals/helpers"
	"spsp_backend/internals/helpers/cachestore"
	"spsp_backend/internals/helpers/session"
)

// Level per sumbu (rendah → tinggi).
const (
	LevelRendah = "rendah"
	LevelSedang = "sedang"
	LevelTinggi = "tinggi"
)

// nineBoxTTL: hasil matrix boleh basi maksimal segini; perubahan session
// meng-invalidate lewat hash baru, bukan mutasi entri cache.
const nineBoxTTL = 2 * time.Hour

// boxLabels: tabel tetap 9 kotak, baris = level potensi, kolom = level kinerja,
// keduanya urut rendah → tinggi. Box = 3×(potensi−1) + kinerja.
var boxLabels = [10]string{
	"",
	"Need Attention",      // 1: potensi rendah, kinerja rendah
	"Average Performer",   // 2: potensi rendah, kinerja sedang
	"Solid Performer",     // 3: potensi rendah, kinerja tinggi
	"Inconsistent Player", // 4: potensi sedang, kinerja rendah
	"Core Player",         // 5: potensi sedang, kinerja sedang
	"High Performer",      // 6: potensi sedang, kinerja tinggi
	"Potential Gem",       // 7: potensi tinggi, kinerja rendah
	"High Potential",      // 8: potensi tinggi, kinerja sedang
	"Star Performer",      // 9: potensi tinggi, kinerja tinggi
}

// NineBoxService menghitung klasifikasi 9-box (potensi × kinerja) memakai
// statistik populasi (mean ± stddev populasi, bukan sampel) sebagai batas
// kotak. Rating mentah tanpa standar/toleransi — model 9-box tidak memakai
// mesin standar sama sekali.
type NineBoxService struct {
	DB    *gorm.DB
	Sess  session.Store
	Cache *cachestore.Store
}

func NewNineBoxService(db *gorm.DB, sess session.Store, cache *cachestore.Store) *NineBoxService {
	return &NineBoxService{DB: db, Sess: sess, Cache: cache}
}

// GetNineBoxMatrixData: hasil di-cache per (event, formasi, configHash);
// configHash memotret state adjustment/standard terpilih session sehingga
// perubahan override menghasilkan key baru.
func (s *NineBoxService) GetNineBoxMatrixData(eventID, positionFormationID uuid.UUID) (*dto.NineBoxResult, error) {
	var event eventModel.EventModel
	if err := s.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyNineBoxResult(), nil
		}
		return nil, err
	}

	key := fmt.Sprintf("nine_box:%s:%s:%s", eventID, positionFormationID, s.configHash(event.EventTemplateID))
	cached, err := s.Cache.Remember(key, nineBoxTTL, func() (any, error) {
		return s.buildMatrix(eventID, positionFormationID)
	})
	if err != nil {
		return nil, err
	}
	result, ok := cached.(*dto.NineBoxResult)
	if !ok {
		return s.buildMatrix(eventID, positionFormationID)
	}
	return result, nil
}

// configHash: sha1 atas (session id, adjustment, standard terpilih) template.
func (s *NineBoxService) configHash(templateID uuid.UUID) string {
	resolver := stdSvc.NewStandardResolver(s.DB, s.Sess)
	payload := map[string]any{
		"session_id": s.Sess.ID(),
		"adjustment": resolver.Adjustment(templateID),
		"selected":   s.Sess.Get(session.SelectedStandardKey(templateID), nil),
	}
	raw, err := sonic.Marshal(payload)
	if err != nil {
		raw = []byte(s.Sess.ID())
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}

func emptyNineBoxResult() *dto.NineBoxResult {
	return &dto.NineBoxResult{
		Participants: []dto.NineBoxParticipant{},
		Statistics:   zeroFilledStatistics(nil, 0),
	}
}

func (s *NineBoxService) buildMatrix(eventID, positionFormationID uuid.UUID) (*dto.NineBoxResult, error) {
	potensiAvg, err := s.averageRatings(eventID, positionFormationID, tmplModel.CategoryCodePotensi)
	if err != nil {
		return nil, err
	}
	kinerjaAvg, err := s.averageRatings(eventID, positionFormationID, tmplModel.CategoryCodeKompetensi)
	if err != nil {
		return nil, err
	}

	var participants []eventModel.ParticipantModel
	err = s.DB.
		Where("participant_event_id = ? AND participant_position_formation_id = ?", eventID, positionFormationID).
		Order("participant_name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	// hanya peserta yang punya rating di kedua sumbu
	type pair struct {
		participant eventModel.ParticipantModel
		potensi     float64
		kinerja     float64
	}
	pairs := make([]pair, 0, len(participants))
	potensiValues := make([]float64, 0, len(participants))
	kinerjaValues := make([]float64, 0, len(participants))
	for _, p := range participants {
		potensi, okPotensi := potensiAvg[p.ParticipantID]
		kinerja, okKinerja := kinerjaAvg[p.ParticipantID]
		if !okPotensi || !okKinerja {
			continue
		}
		pairs = append(pairs, pair{participant: p, potensi: potensi, kinerja: kinerja})
		potensiValues = append(potensiValues, potensi)
		kinerjaValues = append(kinerjaValues, kinerja)
	}
	if len(pairs) == 0 {
		return emptyNineBoxResult(), nil
	}

	boundaries := dto.NineBoxBoundaries{
		Potensi: axisBoundary(potensiValues),
		Kinerja: axisBoundary(kinerjaValues),
	}

	counts := map[int]int{}
	result := &dto.NineBoxResult{
		Participants: make([]dto.NineBoxParticipant, 0, len(pairs)),
		Boundaries:   boundaries,
		Total:        len(pairs),
	}
	for _, item := range pairs {
		potensiLevel := axisLevel(item.potensi, boundaries.Potensi)
		kinerjaLevel := axisLevel(item.kinerja, boundaries.Kinerja)
		box := boxNumber(potensiLevel, kinerjaLevel)
		counts[box]++
		result.Participants = append(result.Participants, dto.NineBoxParticipant{
			ParticipantID:   item.participant.ParticipantID,
			ParticipantName: item.participant.ParticipantName,
			TestNumber:      item.participant.ParticipantTestNumber,
			PotensiRating:   helper.Round2(item.potensi),
			KinerjaRating:   helper.Round2(item.kinerja),
			PotensiLevel:    potensiLevel,
			KinerjaLevel:    kinerjaLevel,
			Box:             box,
			BoxLabel:        boxLabels[box],
		})
	}
	result.Statistics = zeroFilledStatistics(counts, len(pairs))
	return result, nil
}

// averageRatings: AVG(individual_rating) per peserta untuk satu kode kategori
// (GROUP BY participant, join aspek → kategori).
func (s *NineBoxService) averageRatings(eventID, positionFormationID uuid.UUID, categoryCode string) (map[uuid.UUID]float64, error) {
	type avgRow struct {
		ParticipantID uuid.UUID `gorm:"column:participant_id"`
		AvgRating     float64   `gorm:"column:avg_rating"`
	}
	var rows []avgRow
	err := s.DB.
		Table("aspect_assessments").
		Select("aspect_assessments.aspect_assessment_participant_id AS participant_id, AVG(aspect_assessments.aspect_assessment_individual_rating) AS avg_rating").
		Joins("JOIN aspects ON aspects.aspect_id = aspect_assessments.aspect_assessment_aspect_id").
		Joins("JOIN category_types ON category_types.category_type_id = aspects.aspect_category_type_id").
		Where("aspect_assessments.aspect_assessment_event_id = ? AND aspect_assessments.aspect_assessment_position_formation_id = ? AND category_types.category_type_code = ?",
			eventID, positionFormationID, categoryCode).
		Group("aspect_assessments.aspect_assessment_participant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		out[row.ParticipantID] = row.AvgRating
	}
	return out, nil
}

// axisBoundary: mean ± stddev POPULASI (bukan Bessel) — perilaku sumber dipertahankan.
func axisBoundary(values []float64) dto.AxisBoundary {
	avg := stat.Mean(values, nil)
	stdDev := stat.PopStdDev(values, nil)
	return dto.AxisBoundary{
		Average:    helper.Round2(avg),
		StdDev:     helper.Round2(stdDev),
		LowerBound: helper.Round2(avg - stdDev),
		UpperBound: helper.Round2(avg + stdDev),
	}
}

// axisLevel: < lower = rendah, > upper = tinggi, sisanya (inklusif) sedang.
func axisLevel(value float64, boundary dto.AxisBoundary) string {
	switch {
	case value < boundary.LowerBound:
		return LevelRendah
	case value > boundary.UpperBound:
		return LevelTinggi
	default:
		return LevelSedang
	}
}

var levelIndex = map[string]int{LevelRendah: 0, LevelSedang: 1, LevelTinggi: 2}

func boxNumber(potensiLevel, kinerjaLevel string) int {
	return 3*levelIndex[potensiLevel] + levelIndex[kinerjaLevel] + 1
}

func zeroFilledStatistics(counts map[int]int, total int) []dto.NineBoxStatistic {
	stats := make([]dto.NineBoxStatistic, 0, 9)
	for box := 1; box <= 9; box++ {
		count := counts[box]
		percentage := 0.0
		if total > 0 {
			percentage = helper.Round2(float64(count) / float64(total) * 100)
		}
		stats = append(stats, dto.NineBoxStatistic{
			Box:        box,
			Label:      boxLabels[box],
			Count:      count,
			Percentage: percentage,
		})
	}
	return stats
}
