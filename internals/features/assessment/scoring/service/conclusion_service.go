// file: internals/features/assessment/scoring/service/conclusion_service.go
package service

/* =========================
   Taksonomi kesimpulan
========================= */

// Taksonomi gap (dipakai hampir semua laporan).
const (
	ConclusionAboveStandard = "Di Atas Standar"
	ConclusionMeetsStandard = "Memenuhi Standar"
	ConclusionBelowStandard = "Di Bawah Standar"
)

// Taksonomi potensial (renaming 1:1 dari taksonomi gap,
// hanya dipakai di laporan final summary).
const (
	ConclusionVeryPotential = "Sangat Potensial"
	ConclusionPotential     = "Potensial"
	ConclusionLessPotential = "Kurang Potensial"
)

const (
	TaxonomyGap       = "gap"
	TaxonomyPotential = "potential"
)

// Classify memetakan pasangan (originalGap, adjustedGap) ke satu dari tiga
// label. Total untuk semua input real:
//
//	originalGap >= 0             → Di Atas Standar (apa pun adjustedGap-nya)
//	else adjustedGap >= 0        → Memenuhi Standar
//	else                         → Di Bawah Standar
func Classify(originalGap, adjustedGap float64) string {
	switch {
	case originalGap >= 0:
		return ConclusionAboveStandard
	case adjustedGap >= 0:
		return ConclusionMeetsStandard
	default:
		return ConclusionBelowStandard
	}
}

var potentialByGapLabel = map[string]string{
	ConclusionAboveStandard: ConclusionVeryPotential,
	ConclusionMeetsStandard: ConclusionPotential,
	ConclusionBelowStandard: ConclusionLessPotential,
}

// ClassifyPotential: label taksonomi potensial untuk pasangan gap yang sama.
func ClassifyPotential(originalGap, adjustedGap float64) string {
	return potentialByGapLabel[Classify(originalGap, adjustedGap)]
}

/* =========================
   Metadata presentasi
========================= */

type ConclusionConfig struct {
	Color            string `json:"color"`
	StyleClass       string `json:"style_class"`
	RangeDescription string `json:"range_description"`
}

var gapConclusionConfigs = map[string]ConclusionConfig{
	ConclusionAboveStandard: {
		Color:            "#16a34a",
		StyleClass:       "badge-success",
		RangeDescription: "Gap original >= 0",
	},
	ConclusionMeetsStandard: {
		Color:            "#eab308",
		StyleClass:       "badge-warning",
		RangeDescription: "Gap original < 0, gap toleransi >= 0",
	},
	ConclusionBelowStandard: {
		Color:            "#dc2626",
		StyleClass:       "badge-danger",
		RangeDescription: "Gap toleransi < 0",
	},
}

var potentialConclusionConfigs = map[string]ConclusionConfig{
	ConclusionVeryPotential: {
		Color:            "#16a34a",
		StyleClass:       "badge-success",
		RangeDescription: "Gap original >= 0",
	},
	ConclusionPotential: {
		Color:            "#eab308",
		StyleClass:       "badge-warning",
		RangeDescription: "Gap original < 0, gap toleransi >= 0",
	},
	ConclusionLessPotential: {
		Color:            "#dc2626",
		StyleClass:       "badge-danger",
		RangeDescription: "Gap toleransi < 0",
	},
}

// ConfigFor mengambil metadata presentasi sebuah label pada taksonomi tertentu.
func ConfigFor(label, taxonomy string) (ConclusionConfig, bool) {
	switch taxonomy {
	case TaxonomyPotential:
		cfg, ok := potentialConclusionConfigs[label]
		return cfg, ok
	default:
		cfg, ok := gapConclusionConfigs[label]
		return cfg, ok
	}
}
