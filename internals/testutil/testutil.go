// file: internals/testutil/testutil.go
//
// Fixture DB sqlite in-memory untuk test service: skema di-migrate dari model
// yang sama dengan production, plus builder kecil untuk menyusun data
// (template → kategori → aspek → sub-aspek → peserta → assessment).
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	eventModel "spsp_backend/internals/features/assessment/event/model"
	narrativeModel "spsp_backend/internals/features/assessment/narrative/model"
	resultModel "spsp_backend/internals/features/assessment/result/model"
	stdModel "spsp_backend/internals/features/assessment/standard/model"
	tmplModel "spsp_backend/internals/features/assessment/template/model"
	"spsp_backend/internals/helpers/session"
)

// OpenTestDB membuka sqlite in-memory (satu DB per test) dan migrate semua tabel.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite in-memory: %v", err)
	}

	err = db.AutoMigrate(
		&tmplModel.TemplateModel{},
		&tmplModel.CategoryTypeModel{},
		&tmplModel.AspectModel{},
		&tmplModel.SubAspectModel{},
		&eventModel.EventModel{},
		&eventModel.PositionFormationModel{},
		&eventModel.ParticipantModel{},
		&resultModel.AspectAssessmentModel{},
		&resultModel.SubAspectAssessmentModel{},
		&stdModel.CustomStandardModel{},
		&narrativeModel.RatingInterpretationModel{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// Fixture: satu template (potensi+kompetensi), satu event + formasi,
// siap ditambahi aspek & peserta per test.
type Fixture struct {
	T    *testing.T
	DB   *gorm.DB
	Sess session.Store

	Template   tmplModel.TemplateModel
	Potensi    tmplModel.CategoryTypeModel
	Kompetensi tmplModel.CategoryTypeModel
	Event      eventModel.EventModel
	Formation  eventModel.PositionFormationModel
}

func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	f := &Fixture{
		T:    t,
		DB:   OpenTestDB(t),
		Sess: session.NewManager().Scope("test-session"),
	}

	institutionID := uuid.New()
	f.Template = tmplModel.TemplateModel{
		TemplateID:            uuid.New(),
		TemplateInstitutionID: institutionID,
		TemplateCode:          "TPL-STANDAR",
		TemplateName:          "Template Asesmen Standar",
	}
	f.mustCreate(&f.Template)

	f.Potensi = tmplModel.CategoryTypeModel{
		CategoryTypeID:               uuid.New(),
		CategoryTypeTemplateID:       f.Template.TemplateID,
		CategoryTypeCode:             tmplModel.CategoryCodePotensi,
		CategoryTypeName:             "Potensi",
		CategoryTypeWeightPercentage: 40,
	}
	f.mustCreate(&f.Potensi)

	f.Kompetensi = tmplModel.CategoryTypeModel{
		CategoryTypeID:               uuid.New(),
		CategoryTypeTemplateID:       f.Template.TemplateID,
		CategoryTypeCode:             tmplModel.CategoryCodeKompetensi,
		CategoryTypeName:             "Kompetensi",
		CategoryTypeWeightPercentage: 60,
	}
	f.mustCreate(&f.Kompetensi)

	f.Event = eventModel.EventModel{
		EventID:            uuid.New(),
		EventInstitutionID: institutionID,
		EventTemplateID:    f.Template.TemplateID,
		EventCode:          "EVT-2026",
		EventName:          "Asesmen Batch 2026",
		EventYear:          2026,
	}
	f.mustCreate(&f.Event)

	f.Formation = eventModel.PositionFormationModel{
		PositionFormationID:      uuid.New(),
		PositionFormationEventID: f.Event.EventID,
		PositionFormationName:    "Kepala Seksi",
		PositionFormationQuota:   1,
	}
	f.mustCreate(&f.Formation)

	return f
}

func (f *Fixture) mustCreate(row any) {
	f.T.Helper()
	if err := f.DB.Create(row).Error; err != nil {
		f.T.Fatalf("seed %T: %v", row, err)
	}
}

// AddAspect menambah aspek di bawah satu kategori fixture.
func (f *Fixture) AddAspect(category tmplModel.CategoryTypeModel, code, name string, weight int, rating float64, order int) tmplModel.AspectModel {
	f.T.Helper()
	aspect := tmplModel.AspectModel{
		AspectID:               uuid.New(),
		AspectTemplateID:       f.Template.TemplateID,
		AspectCategoryTypeID:   category.CategoryTypeID,
		AspectCode:             code,
		AspectName:             name,
		AspectWeightPercentage: weight,
		AspectStandardRating:   rating,
		AspectOrder:            order,
	}
	f.mustCreate(&aspect)
	return aspect
}

// AddSubAspect menambah sub-aspek di bawah satu aspek.
func (f *Fixture) AddSubAspect(aspect tmplModel.AspectModel, code, name string, rating float64, order int) tmplModel.SubAspectModel {
	f.T.Helper()
	sub := tmplModel.SubAspectModel{
		SubAspectID:             uuid.New(),
		SubAspectAspectID:       aspect.AspectID,
		SubAspectCode:           code,
		SubAspectName:           name,
		SubAspectStandardRating: rating,
		SubAspectOrder:          order,
	}
	f.mustCreate(&sub)
	return sub
}

// AddParticipant menambah peserta di (event, formasi) fixture.
func (f *Fixture) AddParticipant(name, testNumber string) eventModel.ParticipantModel {
	f.T.Helper()
	participant := eventModel.ParticipantModel{
		ParticipantID:                  uuid.New(),
		ParticipantEventID:             f.Event.EventID,
		ParticipantPositionFormationID: f.Formation.PositionFormationID,
		ParticipantTestNumber:          testNumber,
		ParticipantName:                name,
	}
	f.mustCreate(&participant)
	return participant
}

// AddAssessment mencatat rating individu satu peserta pada satu aspek.
func (f *Fixture) AddAssessment(participant eventModel.ParticipantModel, aspect tmplModel.AspectModel, rating float64) resultModel.AspectAssessmentModel {
	f.T.Helper()
	assessment := resultModel.AspectAssessmentModel{
		AspectAssessmentID:                  uuid.New(),
		AspectAssessmentEventID:             f.Event.EventID,
		AspectAssessmentPositionFormationID: f.Formation.PositionFormationID,
		AspectAssessmentParticipantID:       participant.ParticipantID,
		AspectAssessmentAspectID:            aspect.AspectID,
		AspectAssessmentIndividualRating:    rating,
		AspectAssessmentIndividualScore:     rating * float64(aspect.AspectWeightPercentage),
		AspectAssessmentStandardRating:      aspect.AspectStandardRating,
		AspectAssessmentStandardScore:       aspect.AspectStandardRating * float64(aspect.AspectWeightPercentage),
	}
	f.mustCreate(&assessment)
	return assessment
}

// AddSubAssessment mencatat rating individu satu sub-aspek.
func (f *Fixture) AddSubAssessment(assessment resultModel.AspectAssessmentModel, sub tmplModel.SubAspectModel, rating float64) resultModel.SubAspectAssessmentModel {
	f.T.Helper()
	row := resultModel.SubAspectAssessmentModel{
		SubAspectAssessmentID:                 uuid.New(),
		SubAspectAssessmentAspectAssessmentID: assessment.AspectAssessmentID,
		SubAspectAssessmentSubAspectID:        sub.SubAspectID,
		SubAspectAssessmentIndividualRating:   rating,
	}
	f.mustCreate(&row)
	return row
}

// AddCustomStandard menyimpan satu custom standard untuk template fixture.
func (f *Fixture) AddCustomStandard(name string, categoryWeights map[string]int, aspectConfigs map[string]stdModel.CustomStandardAspectConfig, subAspectConfigs map[string]stdModel.CustomStandardSubAspectConfig) stdModel.CustomStandardModel {
	f.T.Helper()
	row := stdModel.CustomStandardModel{
		CustomStandardID:            uuid.New(),
		CustomStandardInstitutionID: f.Template.TemplateInstitutionID,
		CustomStandardTemplateID:    f.Template.TemplateID,
		CustomStandardName:          name,
	}
	if categoryWeights != nil {
		row.CustomStandardCategoryWeights = datatypes.NewJSONType(categoryWeights)
	}
	if aspectConfigs != nil {
		row.CustomStandardAspectConfigs = datatypes.NewJSONType(aspectConfigs)
	}
	if subAspectConfigs != nil {
		row.CustomStandardSubAspectConfigs = datatypes.NewJSONType(subAspectConfigs)
	}
	f.mustCreate(&row)
	return row
}
