// file: internals/features/assessment/scoring/service/conclusion_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		originalGap float64
		adjustedGap float64
		want        string
	}{
		{"original positif", 4.8, 9.2, ConclusionAboveStandard},
		{"original nol", 0, 4.8, ConclusionAboveStandard},
		// originalGap >= 0 menang walau adjustedGap negatif (toleransi negatif ekstrem)
		{"original nol adjusted negatif", 0, -1, ConclusionAboveStandard},
		{"hanya lolos karena toleransi", -3, 1.8, ConclusionMeetsStandard},
		{"pas di batas toleransi", -4.8, 0, ConclusionMeetsStandard},
		{"di bawah toleransi", -10, -5.2, ConclusionBelowStandard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.originalGap, tc.adjustedGap))
		})
	}
}

func TestClassifyTotal(t *testing.T) {
	// setiap kombinasi tanda harus menghasilkan tepat satu dari tiga label
	values := []float64{-7.5, -0.01, 0, 0.01, 7.5}
	for _, original := range values {
		for _, adjusted := range values {
			label := Classify(original, adjusted)
			assert.Contains(t,
				[]string{ConclusionAboveStandard, ConclusionMeetsStandard, ConclusionBelowStandard},
				label, "original=%v adjusted=%v", original, adjusted)
		}
	}
}

func TestClassifyPotential(t *testing.T) {
	assert.Equal(t, ConclusionVeryPotential, ClassifyPotential(1, 2))
	assert.Equal(t, ConclusionPotential, ClassifyPotential(-1, 0))
	assert.Equal(t, ConclusionLessPotential, ClassifyPotential(-5, -1))
}

func TestClassifyConsistentWithPotential(t *testing.T) {
	// dua taksonomi harus selalu sejalan untuk input yang sama
	pairs := [][2]float64{{3, 5}, {0, -2}, {-1, 0.5}, {-1, 0}, {-9, -3}}
	for _, pair := range pairs {
		gap := Classify(pair[0], pair[1])
		potential := ClassifyPotential(pair[0], pair[1])
		assert.Equal(t, potentialByGapLabel[gap], potential)
	}
}

func TestConfigFor(t *testing.T) {
	for _, label := range []string{ConclusionAboveStandard, ConclusionMeetsStandard, ConclusionBelowStandard} {
		cfg, ok := ConfigFor(label, TaxonomyGap)
		assert.True(t, ok, label)
		assert.NotEmpty(t, cfg.Color)
		assert.NotEmpty(t, cfg.StyleClass)
	}
	for _, label := range []string{ConclusionVeryPotential, ConclusionPotential, ConclusionLessPotential} {
		cfg, ok := ConfigFor(label, TaxonomyPotential)
		assert.True(t, ok, label)
		assert.NotEmpty(t, cfg.Color)
	}

	_, ok := ConfigFor("Label Ngawur", TaxonomyGap)
	assert.False(t, ok)
}
