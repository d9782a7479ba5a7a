// file: internals/features/assessment/standard/service/standard_resolver_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdModel "spsp_backend/internals/features/assessment/standard/model"
	service "spsp_backend/internals/features/assessment/standard/service"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/testutil"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestResolverDefaultsFromDatabase(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	assert.Equal(t, 40, resolver.GetCategoryWeight(f.Template.TemplateID, "potensi"))
	assert.Equal(t, 12, resolver.GetAspectWeight(f.Template.TemplateID, "integritas"))
	assert.InDelta(t, 4.0, resolver.GetAspectRating(f.Template.TemplateID, "integritas"), 0.001)
	assert.True(t, resolver.IsAspectActive(f.Template.TemplateID, "integritas"))

	// key yang tidak dikenal → nilai aman, bukan error
	assert.Equal(t, 0, resolver.GetAspectWeight(f.Template.TemplateID, "tidak-ada"))
	assert.True(t, resolver.IsAspectActive(f.Template.TemplateID, "tidak-ada"))
}

func TestResolverSelectedStandardBeatsDefault(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	custom := f.AddCustomStandard("Standar Eselon III",
		map[string]int{"potensi": 50, "kompetensi": 50},
		map[string]stdModel.CustomStandardAspectConfig{
			"integritas": {Weight: 20, Rating: floatPtr(4.5)},
		}, nil)
	require.NoError(t, service.SelectCustomStandard(f.DB, f.Sess, f.Template.TemplateID, &custom.CustomStandardID))

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	assert.Equal(t, 50, resolver.GetCategoryWeight(f.Template.TemplateID, "potensi"))
	assert.Equal(t, 20, resolver.GetAspectWeight(f.Template.TemplateID, "integritas"))
	assert.InDelta(t, 4.5, resolver.GetAspectRating(f.Template.TemplateID, "integritas"), 0.001)
}

func TestResolverAdjustmentBeatsSelectedStandardPerKey(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 8, 3.0, 2)

	custom := f.AddCustomStandard("Standar Eselon III", nil,
		map[string]stdModel.CustomStandardAspectConfig{
			"integritas": {Weight: 20},
			"kerjasama":  {Weight: 15},
		}, nil)
	require.NoError(t, service.SelectCustomStandard(f.DB, f.Sess, f.Template.TemplateID, &custom.CustomStandardID))

	// adjustment hanya menyentuh integritas
	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectWeights: map[string]int{"integritas": 30},
	})

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	// per-key: integritas dari adjustment, kerjasama jatuh ke custom standard
	assert.Equal(t, 30, resolver.GetAspectWeight(f.Template.TemplateID, "integritas"))
	assert.Equal(t, 15, resolver.GetAspectWeight(f.Template.TemplateID, "kerjasama"))
	// rating tidak di-override siapa pun → default DB
	assert.InDelta(t, 4.0, resolver.GetAspectRating(f.Template.TemplateID, "integritas"), 0.001)
}

func TestResolverActiveAspectIDsFailOpen(t *testing.T) {
	f := testutil.NewFixture(t)
	a1 := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	a2 := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 8, 3.0, 2)

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	ids, err := resolver.GetActiveAspectIDs(f.Template.TemplateID, "potensi")
	require.NoError(t, err)
	// tanpa adjustment & standard terpilih: semua aspek ikut, urut aspect_order
	require.Len(t, ids, 2)
	assert.Equal(t, a1.AspectID, ids[0])
	assert.Equal(t, a2.AspectID, ids[1])
}

func TestResolverActiveAspectIDsHonorsDeactivation(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	a2 := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 8, 3.0, 2)

	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectActive: map[string]bool{"integritas": false},
	})

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	ids, err := resolver.GetActiveAspectIDs(f.Template.TemplateID, "potensi")
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, a2.AspectID, ids[0])
}

func TestSelectCustomStandardClearsAdjustment(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	custom := f.AddCustomStandard("Standar Alternatif", nil, nil, nil)

	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectWeights: map[string]int{"integritas": 30},
	})

	require.NoError(t, service.SelectCustomStandard(f.DB, f.Sess, f.Template.TemplateID, &custom.CustomStandardID))
	// ganti standard → adjustment lama dibuang
	assert.False(t, f.Sess.Has(session.AdjustmentKey(f.Template.TemplateID)))
	assert.True(t, f.Sess.Has(session.SelectedStandardKey(f.Template.TemplateID)))

	// clear selection → kedua key hilang
	require.NoError(t, service.SelectCustomStandard(f.DB, f.Sess, f.Template.TemplateID, nil))
	assert.False(t, f.Sess.Has(session.SelectedStandardKey(f.Template.TemplateID)))
}

func TestSelectCustomStandardRejectsWrongTemplate(t *testing.T) {
	f := testutil.NewFixture(t)
	custom := f.AddCustomStandard("Standar Alternatif", nil, nil, nil)

	other := testutil.NewFixture(t) // template lain
	err := service.SelectCustomStandard(f.DB, f.Sess, other.Template.TemplateID, &custom.CustomStandardID)
	assert.Error(t, err)
}

func TestSaveAdjustmentValidation(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	errs := service.ValidateStandardPayload(f.DB, f.Template.TemplateID,
		map[string]int{"potensi": 150},
		map[string]int{"integritas": -5},
		map[string]float64{"integritas": 6},
		map[string]float64{"komunikasi": 0.5})
	assert.Contains(t, errs, "category_weights.potensi")
	assert.Contains(t, errs, "aspect_weights.integritas")
	assert.Contains(t, errs, "aspect_ratings.integritas")
	assert.Contains(t, errs, "sub_aspect_ratings.komunikasi")
}

func TestCategoryWeightSumRule(t *testing.T) {
	f := testutil.NewFixture(t)

	// kedua kategori tercakup tapi jumlah ≠ 100 → error
	errs := service.ValidateStandardPayload(f.DB, f.Template.TemplateID,
		map[string]int{"potensi": 30, "kompetensi": 30}, nil, nil, nil)
	assert.Contains(t, errs, "category_weights")

	// cakupan parsial → aturan jumlah tidak diberlakukan
	errs = service.ValidateStandardPayload(f.DB, f.Template.TemplateID,
		map[string]int{"potensi": 30}, nil, nil, nil)
	assert.Empty(t, errs)

	// jumlah pas 100 → valid
	errs = service.ValidateStandardPayload(f.DB, f.Template.TemplateID,
		map[string]int{"potensi": 45, "kompetensi": 55}, nil, nil, nil)
	assert.Empty(t, errs)
}

func TestSaveToleranceRange(t *testing.T) {
	f := testutil.NewFixture(t)

	assert.NotEmpty(t, service.SaveTolerance(f.Sess, -1))
	assert.NotEmpty(t, service.SaveTolerance(f.Sess, 101))
	assert.Empty(t, service.SaveTolerance(f.Sess, 25))
	assert.Equal(t, 25, session.Tolerance(f.Sess))
}
