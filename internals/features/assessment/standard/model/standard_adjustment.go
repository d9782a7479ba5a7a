// file: internals/features/assessment/standard/model/standard_adjustment.go
package model

import "time"

// StandardAdjustment: override bobot/rating/status aktif yang hidup di session
// (ephemeral, per template). Setiap map dievaluasi per-key secara independen —
// override satu aspek tidak berimplikasi apa pun pada aspek lain.
// Di-clear saat reset atau saat ganti custom standard terpilih.
type StandardAdjustment struct {
	CategoryWeights  map[string]int     `json:"category_weights,omitempty"`
	AspectWeights    map[string]int     `json:"aspect_weights,omitempty"`
	AspectRatings    map[string]float64 `json:"aspect_ratings,omitempty"`
	SubAspectRatings map[string]float64 `json:"sub_aspect_ratings,omitempty"`
	AspectActive     map[string]bool    `json:"aspect_active,omitempty"`
	SubAspectActive  map[string]bool    `json:"sub_aspect_active,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// IsEmpty: true kalau tidak ada satu pun override.
func (a *StandardAdjustment) IsEmpty() bool {
	if a == nil {
		return true
	}
	return len(a.CategoryWeights) == 0 &&
		len(a.AspectWeights) == 0 &&
		len(a.AspectRatings) == 0 &&
		len(a.SubAspectRatings) == 0 &&
		len(a.AspectActive) == 0 &&
		len(a.SubAspectActive) == 0
}

// HasSubAspectOverrides: ada override rating/aktif di level sub-aspek.
// Dipakai sebagai gerbang optimasi eager-load sub-assessment di ranking.
func (a *StandardAdjustment) HasSubAspectOverrides() bool {
	if a == nil {
		return false
	}
	return len(a.SubAspectRatings) > 0 || len(a.SubAspectActive) > 0
}
