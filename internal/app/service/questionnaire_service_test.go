package service

import (
	"io"
	"testing"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json", Output: io.Discard})
}

func setupQuestionnaireServiceTest(t *testing.T) (QuestionnaireService, *gorm.DB, *model.Company) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	log := testLogger()
	questionnaireRepo := repository.NewQuestionnaireRepository(testDB, log)
	companyRepo := repository.NewCompanyRepository(testDB, log)
	svc := NewQuestionnaireService(questionnaireRepo, companyRepo, testDB, log)

	company := &model.Company{
		Name:          "Test Company",
		ContactEmail:  "contact@test.example",
		EmployeeCount: 12,
		Status:        model.StatusDraft,
	}
	testDB.Create(company)

	return svc, testDB, company
}

// completeSectionValues satisfies every field in a section. Composite fields
// get an answer covering all declared modes so both any and all pass.
func completeSectionValues(section seal.SectionDef) map[string]interface{} {
	values := map[string]interface{}{}
	for _, field := range section.Fields {
		if len(field.InputModes) > 0 {
			values[field.Key] = seal.ModeAnswer{
				Text: "provided",
				URL:  "https://example.com/doc",
				File: &seal.FileUpload{ID: "f1", FileURL: "https://files.example.com/f1.pdf"},
			}
			continue
		}
		switch field.Type {
		case seal.FieldBoolean:
			values[field.Key] = true
		case seal.FieldNumber:
			values[field.Key] = 10
		case seal.FieldArray, seal.FieldMultiSelect:
			values[field.Key] = []interface{}{"entry"}
		default:
			values[field.Key] = "answer"
		}
	}
	return values
}

func saveAllSections(t *testing.T, svc QuestionnaireService, companyID uint) {
	for _, section := range seal.Schema() {
		if section.Optional {
			continue
		}
		_, err := svc.SaveSection(companyID, section.Key, completeSectionValues(section))
		require.NoError(t, err)
	}
}

func TestQuestionnaireService_SaveSection_CreatesOnFirstWrite(t *testing.T) {
	svc, testDB, company := setupQuestionnaireServiceTest(t)

	q, err := svc.SaveSection(company.ID, "company_profile", map[string]interface{}{
		"company_name": "Test Company",
	})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)
	assert.Equal(t, "company_profile", q.ActiveSection)

	var count int64
	testDB.Model(&model.Questionnaire{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestQuestionnaireService_SaveSection_UnknownSection(t *testing.T) {
	svc, _, company := setupQuestionnaireServiceTest(t)

	_, err := svc.SaveSection(company.ID, "nonexistent_section", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestQuestionnaireService_SaveSection_LockedAfterSubmission(t *testing.T) {
	svc, _, company := setupQuestionnaireServiceTest(t)

	saveAllSections(t, svc, company.ID)
	require.NoError(t, svc.Submit(company.ID))

	_, err := svc.SaveSection(company.ID, "company_profile", map[string]interface{}{
		"company_name": "Changed",
	})
	assert.ErrorIs(t, err, ErrQuestionnaireLocked)
}

func TestQuestionnaireService_Submit_Incomplete(t *testing.T) {
	svc, testDB, company := setupQuestionnaireServiceTest(t)

	section, _ := seal.SectionByKey("company_profile")
	_, err := svc.SaveSection(company.ID, "company_profile", completeSectionValues(section))
	require.NoError(t, err)

	err = svc.Submit(company.ID)
	require.Error(t, err)

	var validationErr *seal.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Sections)

	// Nothing changed
	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.StatusDraft, reloaded.Status)
}

func TestQuestionnaireService_Submit_Complete(t *testing.T) {
	svc, testDB, company := setupQuestionnaireServiceTest(t)

	saveAllSections(t, svc, company.ID)
	require.NoError(t, svc.Submit(company.ID))

	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.StatusApplicationSubmitted, reloaded.Status)

	var q model.Questionnaire
	testDB.Where("company_id = ?", company.ID).First(&q)
	assert.NotNil(t, q.CompletedAt)
}

func TestQuestionnaireService_Submit_NotEligibleTwice(t *testing.T) {
	svc, _, company := setupQuestionnaireServiceTest(t)

	saveAllSections(t, svc, company.ID)
	require.NoError(t, svc.Submit(company.ID))

	err := svc.Submit(company.ID)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestQuestionnaireService_GetProgress_EmptyAndIdempotent(t *testing.T) {
	svc, _, company := setupQuestionnaireServiceTest(t)

	progress, err := svc.GetProgress(company.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.OverallPercentage)

	section, _ := seal.SectionByKey("supply_chain")
	_, err = svc.SaveSection(company.ID, "supply_chain", completeSectionValues(section))
	require.NoError(t, err)

	first, err := svc.GetProgress(company.ID)
	require.NoError(t, err)
	second, err := svc.GetProgress(company.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Greater(t, first.OverallPercentage, 0)
}

func TestQuestionnaireService_Unlock_RestoresDraft(t *testing.T) {
	svc, testDB, company := setupQuestionnaireServiceTest(t)

	saveAllSections(t, svc, company.ID)
	require.NoError(t, svc.Submit(company.ID))
	require.NoError(t, svc.Unlock(company.ID))

	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.StatusDraft, reloaded.Status)

	var q model.Questionnaire
	testDB.Where("company_id = ?", company.ID).First(&q)
	assert.Nil(t, q.CompletedAt)

	// Editable again
	_, err := svc.SaveSection(company.ID, "company_profile", map[string]interface{}{
		"company_name": "Edited",
	})
	assert.NoError(t, err)
}
