// file: internals/features/assessment/standard/service/standards_cache_service.go
package service

import (
	"github.com/google/uuid"

	helper "spsp_backend/internals/helpers"

	tmplModel "spsp_backend/internals/features/assessment/template/model"
)

// SubAspectSnapshot: hasil resolve satu sub-aspek (sekali per build).
type SubAspectSnapshot struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Name   string    `json:"name"`
	Rating float64   `json:"rating"`
	Active bool      `json:"active"`
	Order  int       `json:"order"`
}

// AspectSnapshot: hasil resolve satu aspek + sub-aspeknya.
type AspectSnapshot struct {
	ID         uuid.UUID                    `json:"id"`
	Code       string                       `json:"code"`
	Name       string                       `json:"name"`
	Weight     int                          `json:"weight"`
	Rating     float64                      `json:"rating"`
	Active     bool                         `json:"active"`
	Order      int                          `json:"order"`
	SubAspects map[string]SubAspectSnapshot `json:"sub_aspects,omitempty"`
}

// HasSubAspects: aspek ini dinilai lewat sub-aspek.
func (a AspectSnapshot) HasSubAspects() bool { return len(a.SubAspects) > 0 }

// ActiveSubAspects mengembalikan sub-aspek aktif, urutan stabil (sub_aspect_order).
func (a AspectSnapshot) ActiveSubAspects() []SubAspectSnapshot {
	out := make([]SubAspectSnapshot, 0, len(a.SubAspects))
	for _, sub := range a.SubAspects {
		if sub.Active {
			out = append(out, sub)
		}
	}
	// map iterasi acak; urutkan by Order supaya deterministik
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// EffectiveRating: rata-rata rating sub-aspek aktif; tanpa sub-aspek pakai
// rating aspek sendiri. Nol sub-aspek aktif → fallback rating aspek
// (jangan bagi nol).
func (a AspectSnapshot) EffectiveRating() float64 {
	if !a.HasSubAspects() {
		return a.Rating
	}
	active := a.ActiveSubAspects()
	if len(active) == 0 {
		return a.Rating
	}
	sum := 0.0
	for _, sub := range active {
		sum += sub.Rating
	}
	return helper.Round2(sum / float64(len(active)))
}

// StandardsSnapshot: memoisasi per-request hasil StandardResolver untuk satu
// set aspek. Dibangun SEKALI di awal satu komputasi ranking/laporan dan
// immutable setelahnya — tidak membaca ulang session di tengah jalan; kalau
// adjustment berubah, caller wajib build ulang.
type StandardsSnapshot struct {
	TemplateID uuid.UUID                 `json:"template_id"`
	Aspects    map[string]AspectSnapshot `json:"aspects"`

	codeByID map[uuid.UUID]string
	subByID  map[uuid.UUID]SubAspectSnapshot
}

// ByID mencari snapshot aspek lewat id.
func (s *StandardsSnapshot) ByID(id uuid.UUID) (AspectSnapshot, bool) {
	code, ok := s.codeByID[id]
	if !ok {
		return AspectSnapshot{}, false
	}
	snap, ok := s.Aspects[code]
	return snap, ok
}

// SubByID mencari snapshot sub-aspek lewat id.
func (s *StandardsSnapshot) SubByID(id uuid.UUID) (SubAspectSnapshot, bool) {
	sub, ok := s.subByID[id]
	return sub, ok
}

// OrderedAspects mengembalikan snapshot aspek urut aspect_order.
func (s *StandardsSnapshot) OrderedAspects() []AspectSnapshot {
	out := make([]AspectSnapshot, 0, len(s.Aspects))
	for _, a := range s.Aspects {
		out = append(out, a)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// BuildStandardsSnapshot memanggil resolver tepat satu kali per aspek
// (weight/rating/active) dan satu kali per sub-aspek (rating/active),
// menghindari resolusi berulang O(peserta × aspek).
func (r *StandardResolver) BuildStandardsSnapshot(templateID uuid.UUID, aspectIDs []uuid.UUID) (*StandardsSnapshot, error) {
	snap := &StandardsSnapshot{
		TemplateID: templateID,
		Aspects:    map[string]AspectSnapshot{},
		codeByID:   map[uuid.UUID]string{},
		subByID:    map[uuid.UUID]SubAspectSnapshot{},
	}
	if len(aspectIDs) == 0 {
		return snap, nil
	}

	var aspects []tmplModel.AspectModel
	err := r.DB.
		Preload("SubAspects").
		Where("aspect_id IN ?", aspectIDs).
		Order("aspect_order ASC").
		Find(&aspects).Error
	if err != nil {
		return nil, err
	}

	for _, a := range aspects {
		entry := AspectSnapshot{
			ID:     a.AspectID,
			Code:   a.AspectCode,
			Name:   a.AspectName,
			Weight: r.GetAspectWeight(templateID, a.AspectCode),
			Rating: r.GetAspectRating(templateID, a.AspectCode),
			Active: r.IsAspectActive(templateID, a.AspectCode),
			Order:  a.AspectOrder,
		}
		if len(a.SubAspects) > 0 {
			entry.SubAspects = make(map[string]SubAspectSnapshot, len(a.SubAspects))
			for _, sub := range a.SubAspects {
				subEntry := SubAspectSnapshot{
					ID:     sub.SubAspectID,
					Code:   sub.SubAspectCode,
					Name:   sub.SubAspectName,
					Rating: r.GetSubAspectRating(templateID, sub.SubAspectCode),
					Active: r.IsSubAspectActive(templateID, sub.SubAspectCode),
					Order:  sub.SubAspectOrder,
				}
				entry.SubAspects[sub.SubAspectCode] = subEntry
				snap.subByID[sub.SubAspectID] = subEntry
			}
		}
		snap.Aspects[a.AspectCode] = entry
		snap.codeByID[a.AspectID] = a.AspectCode
	}
	return snap, nil
}
