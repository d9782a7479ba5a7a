// file: internals/features/assessment/talent/service/nine_box_service_test.go
package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdModel "spsp_backend/internals/features/assessment/standard/model"
	service "spsp_backend/internals/features/assessment/talent/service"
	"spsp_backend/internals/helpers/cachestore"
	"spsp_backend/internals/helpers/session"
	"spsp_backend/internals/testutil"
)

// seedBothAxes: satu aspek per kategori, lalu satu assessment per peserta
// di tiap sumbu (rating potensi = rating kinerja biar gampang dihitung).
func seedBothAxes(f *testutil.Fixture, ratings map[string]float64) {
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	perencanaan := f.AddAspect(f.Kompetensi, "perencanaan", "Perencanaan", 10, 3.0, 1)
	for name, rating := range ratings {
		p := f.AddParticipant(name, name)
		f.AddAssessment(p, integritas, rating)
		f.AddAssessment(p, perencanaan, rating)
	}
}

func TestNineBoxPopulationBoundaries(t *testing.T) {
	f := testutil.NewFixture(t)
	// rating {2,3,4}: mean 3.00, stddev populasi √(2/3) ≈ 0.8165 → 0.82
	seedBothAxes(f, map[string]float64{"Alice": 2.0, "Bob": 3.0, "Citra": 4.0})

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)

	boundary := result.Boundaries.Potensi
	assert.InDelta(t, 3.00, boundary.Average, 0.001)
	assert.InDelta(t, 0.82, boundary.StdDev, 0.001)
	assert.InDelta(t, 2.18, boundary.LowerBound, 0.001)
	assert.InDelta(t, 3.82, boundary.UpperBound, 0.001)
	// kedua sumbu diberi nilai identik → batasnya sama
	assert.Equal(t, result.Boundaries.Potensi, result.Boundaries.Kinerja)
}

func TestNineBoxLevelsAndBoxLabels(t *testing.T) {
	f := testutil.NewFixture(t)
	seedBothAxes(f, map[string]float64{"Alice": 2.0, "Bob": 3.0, "Citra": 4.0})

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)
	require.Len(t, result.Participants, 3)
	assert.Equal(t, 3, result.Total)

	byName := map[string]int{}
	for i, p := range result.Participants {
		byName[p.ParticipantName] = i
	}

	alice := result.Participants[byName["Alice"]]
	assert.Equal(t, service.LevelRendah, alice.PotensiLevel)
	assert.Equal(t, service.LevelRendah, alice.KinerjaLevel)
	assert.Equal(t, 1, alice.Box)
	assert.Equal(t, "Need Attention", alice.BoxLabel)

	bob := result.Participants[byName["Bob"]]
	assert.Equal(t, service.LevelSedang, bob.PotensiLevel)
	assert.Equal(t, 5, bob.Box)
	assert.Equal(t, "Core Player", bob.BoxLabel)

	citra := result.Participants[byName["Citra"]]
	assert.Equal(t, service.LevelTinggi, citra.PotensiLevel)
	assert.Equal(t, service.LevelTinggi, citra.KinerjaLevel)
	assert.Equal(t, 9, citra.Box)
	assert.Equal(t, "Star Performer", citra.BoxLabel)
}

func TestNineBoxSingleParticipantIsSedang(t *testing.T) {
	f := testutil.NewFixture(t)
	// populasi satu orang: stddev 0, batas bawah = batas atas = nilainya
	// sendiri → masuk band tengah (inklusif)
	seedBothAxes(f, map[string]float64{"Alice": 3.5})

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)
	require.Len(t, result.Participants, 1)

	assert.Equal(t, service.LevelSedang, result.Participants[0].PotensiLevel)
	assert.Equal(t, service.LevelSedang, result.Participants[0].KinerjaLevel)
	assert.Equal(t, 5, result.Participants[0].Box)
}

func TestNineBoxExcludesParticipantMissingOneAxis(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	perencanaan := f.AddAspect(f.Kompetensi, "perencanaan", "Perencanaan", 10, 3.0, 1)

	alice := f.AddParticipant("Alice", "001")
	f.AddAssessment(alice, integritas, 3.0)
	f.AddAssessment(alice, perencanaan, 3.0)

	// Bob hanya dinilai di potensi → tidak punya koordinat kinerja
	bob := f.AddParticipant("Bob", "002")
	f.AddAssessment(bob, integritas, 4.0)

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)

	require.Len(t, result.Participants, 1)
	assert.Equal(t, "Alice", result.Participants[0].ParticipantName)
	assert.Equal(t, 1, result.Total)
}

func TestNineBoxStatisticsAlwaysNineBoxes(t *testing.T) {
	f := testutil.NewFixture(t)
	seedBothAxes(f, map[string]float64{"Alice": 2.0, "Bob": 3.0, "Citra": 4.0})

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)

	require.Len(t, result.Statistics, 9)
	totalCount := 0
	for i, stat := range result.Statistics {
		assert.Equal(t, i+1, stat.Box)
		assert.NotEmpty(t, stat.Label)
		totalCount += stat.Count
	}
	assert.Equal(t, result.Total, totalCount)

	// box 1/5/9 masing-masing satu orang dari 33.33%
	assert.Equal(t, 1, result.Statistics[0].Count)
	assert.InDelta(t, 33.33, result.Statistics[0].Percentage, 0.001)
	assert.Equal(t, 0, result.Statistics[1].Count)
	assert.Zero(t, result.Statistics[1].Percentage)
}

func TestNineBoxUnknownEventReturnsEmptyShape(t *testing.T) {
	f := testutil.NewFixture(t)

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	result, err := svc.GetNineBoxMatrixData(uuid.New(), f.Formation.PositionFormationID)
	require.NoError(t, err)

	assert.Empty(t, result.Participants)
	assert.Equal(t, 0, result.Total)
	require.Len(t, result.Statistics, 9)
	for _, stat := range result.Statistics {
		assert.Zero(t, stat.Count)
		assert.Zero(t, stat.Percentage)
	}
}

func TestNineBoxCacheInvalidatesOnSessionChange(t *testing.T) {
	f := testutil.NewFixture(t)
	integritas := f.AddAspect(f.Potensi, "integritas", "Integritas", 12, 4.0, 1)
	perencanaan := f.AddAspect(f.Kompetensi, "perencanaan", "Perencanaan", 10, 3.0, 1)

	alice := f.AddParticipant("Alice", "001")
	f.AddAssessment(alice, integritas, 3.0)
	f.AddAssessment(alice, perencanaan, 3.0)

	svc := service.NewNineBoxService(f.DB, f.Sess, cachestore.New())
	first, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Total)

	// data berubah tapi session tidak → key sama → masih hasil cache
	bob := f.AddParticipant("Bob", "002")
	f.AddAssessment(bob, integritas, 4.0)
	f.AddAssessment(bob, perencanaan, 4.0)

	cached, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Total)

	// adjustment baru → hash config berubah → matrix dibangun ulang
	f.Sess.Put(session.AdjustmentKey(f.Template.TemplateID), &stdModel.StandardAdjustment{
		AspectWeights: map[string]int{"integritas": 20},
	})
	rebuilt, err := svc.GetNineBoxMatrixData(f.Event.EventID, f.Formation.PositionFormationID)
	require.NoError(t, err)
	assert.Equal(t, 2, rebuilt.Total)
}
