// file: internals/features/assessment/narrative/service/interpretation_service_test.go
package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spsp_backend/internals/features/assessment/narrative/model"
	service "spsp_backend/internals/features/assessment/narrative/service"
	"spsp_backend/internals/testutil"
)

func seedInterpretation(t *testing.T, f *testutil.Fixture, interpretationType string, name *string, rating int, template string) {
	t.Helper()
	err := f.DB.Create(&model.RatingInterpretationModel{
		RatingInterpretationID:       uuid.New(),
		RatingInterpretationType:     interpretationType,
		RatingInterpretationName:     name,
		RatingInterpretationRating:   rating,
		RatingInterpretationTemplate: template,
	}).Error
	require.NoError(t, err)
}

func strPtr(v string) *string { return &v }

func TestInterpretSpecificNameWinsOverGeneric(t *testing.T) {
	f := testutil.NewFixture(t)
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 5,
		"Kemampuan [nama aspek] generik luar biasa.")
	seedInterpretation(t, f, model.InterpretationTypeAspect, strPtr("Integritas"), 5,
		"Integritas yang bersangkutan tidak perlu diragukan.")

	svc := service.NewInterpretationService(f.DB)
	sentence, err := svc.Interpret(model.InterpretationTypeAspect, "Integritas", 5)
	require.NoError(t, err)
	assert.Equal(t, "Integritas yang bersangkutan tidak perlu diragukan.", sentence)
}

func TestInterpretFallsBackToGenericTemplate(t *testing.T) {
	f := testutil.NewFixture(t)
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 3,
		"Kemampuan [nama aspek] berada di tingkat cukup.")

	svc := service.NewInterpretationService(f.DB)
	sentence, err := svc.Interpret(model.InterpretationTypeAspect, "Kerjasama", 3)
	require.NoError(t, err)
	// placeholder diganti nama aspek yang diminta
	assert.Equal(t, "Kemampuan Kerjasama berada di tingkat cukup.", sentence)
}

func TestInterpretFallsBackToDefaultSentence(t *testing.T) {
	f := testutil.NewFixture(t)

	svc := service.NewInterpretationService(f.DB)
	sentence, err := svc.Interpret(model.InterpretationTypeAspect, "Kepemimpinan", 4)
	require.NoError(t, err)
	assert.Contains(t, sentence, "Kepemimpinan")
	assert.NotContains(t, sentence, "[nama aspek]")
}

func TestInterpretTypeIsolation(t *testing.T) {
	f := testutil.NewFixture(t)
	// template sub_aspect tidak boleh bocor ke lookup aspect
	seedInterpretation(t, f, model.InterpretationTypeSubAspect, nil, 2,
		"Sub-aspek [nama aspek] perlu perhatian.")

	svc := service.NewInterpretationService(f.DB)
	sentence, err := svc.Interpret(model.InterpretationTypeAspect, "Integritas", 2)
	require.NoError(t, err)
	assert.NotContains(t, sentence, "Sub-aspek")
}

func TestInterpretClampsRating(t *testing.T) {
	f := testutil.NewFixture(t)
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 1, "Nilai [nama aspek] terendah.")
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 5, "Nilai [nama aspek] tertinggi.")

	svc := service.NewInterpretationService(f.DB)

	low, err := svc.Interpret(model.InterpretationTypeAspect, "Integritas", -3)
	require.NoError(t, err)
	assert.Equal(t, "Nilai Integritas terendah.", low)

	high, err := svc.Interpret(model.InterpretationTypeAspect, "Integritas", 99)
	require.NoError(t, err)
	assert.Equal(t, "Nilai Integritas tertinggi.", high)
}

func TestBuildParagraphJoinsSentences(t *testing.T) {
	f := testutil.NewFixture(t)
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 4, "Kemampuan [nama aspek] baik.")
	seedInterpretation(t, f, model.InterpretationTypeAspect, nil, 2, "Kemampuan [nama aspek] kurang.")

	svc := service.NewInterpretationService(f.DB)
	paragraph, items, err := svc.BuildParagraph(model.InterpretationTypeAspect, []service.NarrativeItem{
		{Name: "Integritas", Rating: 4},
		{Name: "Kerjasama", Rating: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Kemampuan Integritas baik. Kemampuan Kerjasama kurang.", paragraph)
	require.Len(t, items, 2)
	assert.Equal(t, "Kemampuan Integritas baik.", items[0].Sentence)
	assert.Equal(t, "Kemampuan Kerjasama kurang.", items[1].Sentence)
}

func TestBuildParagraphEmptyItems(t *testing.T) {
	f := testutil.NewFixture(t)

	svc := service.NewInterpretationService(f.DB)
	paragraph, items, err := svc.BuildParagraph(model.InterpretationTypeAspect, nil)
	require.NoError(t, err)
	assert.Empty(t, paragraph)
	assert.Empty(t, items)
}
