// file: internals/features/assessment/standard/service/standards_cache_service_test.go
package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdModel "spsp_backend/internals/features/assessment/standard/model"
	service "spsp_backend/internals/features/assessment/standard/service"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/testutil"
)

func TestSnapshotEffectiveRatingMeansActiveSubs(t *testing.T) {
	f := testutil.NewFixture(t)
	kerjasama := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 10, 2.0, 1)
	f.AddSubAspect(kerjasama, "komunikasi", "Komunikasi", 3.0, 1)
	f.AddSubAspect(kerjasama, "kolaborasi", "Kolaborasi", 4.0, 2)

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	snapshot, err := resolver.BuildStandardsSnapshot(f.Template.TemplateID, []uuid.UUID{kerjasama.AspectID})
	require.NoError(t, err)

	snap, ok := snapshot.ByID(kerjasama.AspectID)
	require.True(t, ok)
	// rating efektif = mean sub aktif (3.0+4.0)/2, bukan rating aspek 2.0
	assert.InDelta(t, 3.5, snap.EffectiveRating(), 0.001)
}

func TestSnapshotEffectiveRatingFallsBackWhenAllSubsInactive(t *testing.T) {
	f := testutil.NewFixture(t)
	kerjasama := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 10, 2.0, 1)
	f.AddSubAspect(kerjasama, "komunikasi", "Komunikasi", 3.0, 1)

	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		SubAspectActive: map[string]bool{"komunikasi": false},
	})

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	snapshot, err := resolver.BuildStandardsSnapshot(f.Template.TemplateID, []uuid.UUID{kerjasama.AspectID})
	require.NoError(t, err)

	snap, ok := snapshot.ByID(kerjasama.AspectID)
	require.True(t, ok)
	// semua sub nonaktif → jatuh ke rating aspek
	assert.InDelta(t, 2.0, snap.EffectiveRating(), 0.001)
	assert.Empty(t, snap.ActiveSubAspects())
}

func TestSnapshotAppliesSessionOverrides(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectWeights: map[string]int{"integritas": 20},
		AspectRatings: map[string]float64{"integritas": 3.5},
	})

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	snapshot, err := resolver.BuildStandardsSnapshot(f.Template.TemplateID, []uuid.UUID{integritas.AspectID})
	require.NoError(t, err)

	snap, ok := snapshot.ByID(integritas.AspectID)
	require.True(t, ok)
	assert.Equal(t, 20, snap.Weight)
	assert.InDelta(t, 3.5, snap.Rating, 0.001)
}

func TestSnapshotStableWithinRequest(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	snapshot, err := resolver.BuildStandardsSnapshot(f.Template.TemplateID, []uuid.UUID{integritas.AspectID})
	require.NoError(t, err)

	// session berubah SETELAH snapshot dibangun → snapshot tidak ikut berubah
	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectRatings: map[string]float64{"integritas": 1.0},
	})

	snap, ok := snapshot.ByID(integritas.AspectID)
	require.True(t, ok)
	assert.InDelta(t, 4.0, snap.Rating, 0.001)
}

func TestSnapshotOrderedAspects(t *testing.T) {
	f := testutil.NewFixture(t)
	a2 := f.AddAspect(f.Potensi, "kerjasama", "Kerjasama", 8, 3.0, 2)
	a1 := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)

	resolver := service.NewStandardResolver(f.DB, f.Sess)
	snapshot, err := resolver.BuildStandardsSnapshot(f.Template.TemplateID, []uuid.UUID{a2.AspectID, a1.AspectID})
	require.NoError(t, err)

	ordered := snapshot.OrderedAspects()
	require.Len(t, ordered, 2)
	assert.Equal(t, "integritas", ordered[0].Code)
	assert.Equal(t, "kerjasama", ordered[1].Code)
}
