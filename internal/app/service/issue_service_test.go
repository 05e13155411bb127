package service

import (
	"testing"
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIssueServiceTest(t *testing.T) (IssueService, *gorm.DB, *model.Company) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	log := testLogger()
	issueRepo := repository.NewIssueRepository(testDB, log)
	companyRepo := repository.NewCompanyRepository(testDB, log)
	svc := NewIssueService(issueRepo, companyRepo, testSealConfig(), log)

	company := &model.Company{
		Name:         "Issue Co",
		ContactEmail: "issue@test.example",
		Status:       model.StatusVerified,
	}
	testDB.Create(company)

	return svc, testDB, company
}

func raiseIssues(t *testing.T, svc IssueService, companyID uint, n int) []*model.Issue {
	issues := make([]*model.Issue, 0, n)
	for i := 0; i < n; i++ {
		issue, err := svc.CreateIssue(CreateIssueInput{
			CompanyID:    companyID,
			EvaluationID: "eval-1",
			IssueType:    "labor_violation",
			Severity:     model.SeverityMedium,
		})
		require.NoError(t, err)
		issues = append(issues, issue)
	}
	return issues
}

func TestIssueService_CreateIssue_SetsDeadline(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)

	issue, err := svc.CreateIssue(CreateIssueInput{
		CompanyID: company.ID,
		IssueType: "governance_concern",
		Severity:  model.SeverityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, model.IssueActive, issue.Status)

	expected := time.Now().Add(720 * time.Hour)
	assert.WithinDuration(t, expected, issue.CompanyResponseDeadline, time.Minute)
}

func TestIssueService_CreateIssue_ExplicitDeadline(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)

	// An advisor can set a tighter deadline than the configured window
	deadline := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	issue, err := svc.CreateIssue(CreateIssueInput{
		CompanyID:        company.ID,
		IssueType:        "governance_concern",
		Severity:         model.SeverityCritical,
		ResponseDeadline: &deadline,
	})
	require.NoError(t, err)
	assert.True(t, issue.CompanyResponseDeadline.Equal(deadline))
}

func TestIssueService_CreateIssue_InvalidSeverity(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)

	_, err := svc.CreateIssue(CreateIssueInput{
		CompanyID: company.ID,
		IssueType: "governance_concern",
		Severity:  "catastrophic",
	})
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestIssueService_CreateIssue_CompanyNotFound(t *testing.T) {
	svc, _, _ := setupIssueServiceTest(t)

	_, err := svc.CreateIssue(CreateIssueInput{
		CompanyID: 9999,
		IssueType: "governance_concern",
		Severity:  model.SeverityLow,
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestIssueService_RespondToIssue(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)
	issue := raiseIssues(t, svc, company.ID, 1)[0]

	responded, err := svc.RespondToIssue(issue.ID, "We have opened an internal review.")
	require.NoError(t, err)
	assert.Equal(t, "We have opened an internal review.", responded.CompanyResponse)
	// Responding alone does not close the issue
	assert.Equal(t, model.IssueActive, responded.Status)
}

func TestIssueService_RespondToIssue_DeadlinePassed(t *testing.T) {
	svc, testDB, company := setupIssueServiceTest(t)
	issue := raiseIssues(t, svc, company.ID, 1)[0]

	testDB.Model(&model.Issue{}).Where("id = ?", issue.ID).
		Update("company_response_deadline", time.Now().Add(-time.Hour))

	_, err := svc.RespondToIssue(issue.ID, "too late")
	assert.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestIssueService_ResolveAndDismiss_Terminal(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)
	issues := raiseIssues(t, svc, company.ID, 2)

	resolved, err := svc.ResolveIssue(issues[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	dismissed, err := svc.DismissIssue(issues[1].ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueDismissed, dismissed.Status)

	// Closed issues reject every further mutation
	_, err = svc.ResolveIssue(issues[0].ID)
	assert.ErrorIs(t, err, ErrIssueAlreadyClosed)
	_, err = svc.DismissIssue(issues[0].ID)
	assert.ErrorIs(t, err, ErrIssueAlreadyClosed)
	_, err = svc.RespondToIssue(issues[1].ID, "reply")
	assert.ErrorIs(t, err, ErrIssueAlreadyClosed)
}

func TestIssueService_GetCompanyStanding_Thresholds(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)

	standing, active, err := svc.GetCompanyStanding(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.StandingNormal, standing)
	assert.Equal(t, int64(0), active)

	issues := raiseIssues(t, svc, company.ID, 6)

	standing, active, err = svc.GetCompanyStanding(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.StandingSuspended, standing)
	assert.Equal(t, int64(6), active)

	// Resolving one brings the count back to the normal band
	_, err = svc.ResolveIssue(issues[0].ID)
	require.NoError(t, err)

	standing, active, err = svc.GetCompanyStanding(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.StandingNormal, standing)
	assert.Equal(t, int64(5), active)
}

func TestIssueService_GetCompanyStanding_Revoked(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)

	raiseIssues(t, svc, company.ID, 11)

	standing, active, err := svc.GetCompanyStanding(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.StandingRevoked, standing)
	assert.Equal(t, int64(11), active)
}

func TestIssueService_GetCompanyIssues_FilterByStatus(t *testing.T) {
	svc, _, company := setupIssueServiceTest(t)
	issues := raiseIssues(t, svc, company.ID, 3)

	_, err := svc.ResolveIssue(issues[0].ID)
	require.NoError(t, err)

	all, err := svc.GetCompanyIssues(company.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.GetCompanyIssues(company.ID, string(model.IssueActive))
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
