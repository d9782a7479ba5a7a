// file: internals/features/assessment/ranking/service/ranking_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	service "spsp_backend/internals/features/assessment/ranking/service"
	scoringSvc "spsp_backend/internals/features/assessment/scoring/service"
	stdModel "spsp_backend/internals/features/assessment/standard/model"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/testutil"
)

func TestGetRankingsSortsByScoreDescending(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	alice := f.AddParticipant("Alice", "001")
	bob := f.AddParticipant("Bob", "002")
	f.AddAssessment(alice, integritas, 3.0)
	f.AddAssessment(bob, integritas, 4.5)

	svc := service.NewRankingService(f.DB, f.Sess)
	entries, err := svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Bob", entries[0].ParticipantName)
	assert.InDelta(t, 54.0, entries[0].IndividualScore, 0.001)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Alice", entries[1].ParticipantName)

	// standar kategori identik untuk semua baris
	assert.InDelta(t, 48.0, entries[0].OriginalStandardScore, 0.001)
	assert.InDelta(t, 43.2, entries[0].AdjustedStandardScore, 0.001)
	assert.Equal(t, entries[0].AdjustedStandardScore, entries[1].AdjustedStandardScore)
}

func TestGetRankingsTieBreakByNameAscending(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	// seed dengan urutan sengaja dibalik
	bob := f.AddParticipant("Bob", "002")
	alice := f.AddParticipant("Alice", "001")
	f.AddAssessment(bob, integritas, 4.0)
	f.AddAssessment(alice, integritas, 4.0)

	svc := service.NewRankingService(f.DB, f.Sess)
	entries, err := svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// skor sama → nama asc yang menentukan
	assert.Equal(t, "Alice", entries[0].ParticipantName)
	assert.Equal(t, "Bob", entries[1].ParticipantName)
}

func TestGetRankingsEmptyCategory(t *testing.T) {
	f := testutil.NewFixture(t)
	// kompetensi tidak punya aspek
	svc := service.NewRankingService(f.DB, f.Sess)
	entries, err := svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "kompetensi", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetRankingsDeterministic(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	kerjasama := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 8, 3.0, 2)

	for i, name := range []string{"Citra", "Alice", "Bob", "Dewi"} {
		p := f.AddParticipant(name, name)
		f.AddAssessment(p, integritas, 3.0+float64(i)*0.25)
		f.AddAssessment(p, kerjasama, 4.0-float64(i)*0.25)
	}

	svc := service.NewRankingService(f.DB, f.Sess)
	first, err := svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.GetRankings(
			f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGetRankingsSubOverrideChangesAggregation(t *testing.T) {
	f := testutil.NewFixture(t)
	kerjasama := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 10, 0, 1)
	komunikasi := f.AddSubAspect(kerjasama, "komunikasi", "Komunikasi", 3.0, 1)
	kolaborasi := f.AddSubAspect(kerjasama, "kolaborasi", "Kolaborasi", 4.0, 2)

	alice := f.AddParticipant("Alice", "001")
	assessment := f.AddAssessment(alice, kerjasama, 3.0) // stored = mean lama
	f.AddSubAssessment(assessment, komunikasi, 4.0)
	f.AddSubAssessment(assessment, kolaborasi, 2.0)

	svc := service.NewRankingService(f.DB, f.Sess)

	// tanpa override sub: jalur cepat pakai nilai tersimpan
	entries, err := svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 30.0, entries[0].IndividualScore, 0.001)

	// nonaktifkan kolaborasi → sub-assessment di-load & di-agregasi ulang
	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		SubAspectActive: map[string]bool{"kolaborasi": false},
	})
	entries, err = svc.GetRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// mean sub aktif {4.0} × bobot 10 = 40.0
	assert.InDelta(t, 40.0, entries[0].IndividualScore, 0.001)
}

func TestGetCombinedRankingsWeightsCategories(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	perencanaan := f.AddAspect(f.Kompetensi, "perencanaan", "Perencanaan", 10, 3.0, 1)

	alice := f.AddParticipant("Alice", "001")
	bob := f.AddParticipant("Bob", "002")
	f.AddAssessment(alice, integritas, 4.0)
	f.AddAssessment(alice, perencanaan, 3.0)
	f.AddAssessment(bob, integritas, 5.0)
	// Bob tidak punya nilai kompetensi → drop dari gabungan (inner join)

	svc := service.NewRankingService(f.DB, f.Sess)
	entries, err := svc.GetCombinedRankings(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Alice", entry.ParticipantName)
	assert.Equal(t, 40, entry.PotensiWeight)
	assert.Equal(t, 60, entry.KompetensiWeight)
	// 48×40% + 30×60% = 37.20
	assert.InDelta(t, 37.20, entry.TotalScore, 0.001)
	assert.Equal(t, 1, entry.Rank)
	assert.Equal(t, scoringSvc.ConclusionAboveStandard, entry.Conclusion)
}

func TestGetRekapRankingCountsConclusions(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	// standar 48, toleransi 10% → adjusted 43.2, threshold legacy = -4.32
	above := f.AddParticipant("Above", "001")
	meets := f.AddParticipant("Meets", "002")
	below := f.AddParticipant("Below", "003")
	f.AddAssessment(above, integritas, 4.5) // 54.0, gap +10.8
	f.AddAssessment(meets, integritas, 3.4) // 40.8, gap -2.4 >= -4.32
	f.AddAssessment(below, integritas, 2.0) // 24.0, gap -19.2

	svc := service.NewRankingService(f.DB, f.Sess)
	summary, err := svc.GetRekapRanking(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Passing)
	assert.InDelta(t, 66.67, summary.Percentage, 0.001)
	assert.Equal(t, 1, summary.Conclusions[scoringSvc.ConclusionAboveStandard])
	assert.Equal(t, 1, summary.Conclusions[scoringSvc.ConclusionMeetsStandard])
	assert.Equal(t, 1, summary.Conclusions[scoringSvc.ConclusionBelowStandard])
}

func TestGetRekapRankingEmpty(t *testing.T) {
	f := testutil.NewFixture(t)
	f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	svc := service.NewRankingService(f.DB, f.Sess)
	summary, err := svc.GetRekapRanking(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Passing)
	assert.Zero(t, summary.Percentage)
}

func TestGetMcMappingHonorsQuota(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	alice := f.AddParticipant("Alice", "001")
	bob := f.AddParticipant("Bob", "002")
	f.AddAssessment(alice, integritas, 4.5)
	f.AddAssessment(bob, integritas, 4.2)

	// kuota formasi fixture = 1
	svc := service.NewRankingService(f.DB, f.Sess)
	entries, err := svc.GetMcMapping(
		f.Event.EventID, f.Formation.PositionFormationID, f.Template.TemplateID, "potensi", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].Recommended)
	assert.False(t, entries[1].Recommended) // lolos standar, tapi di luar kuota
	assert.Equal(t, scoringSvc.ConclusionAboveStandard, entries[1].Conclusion)
}
