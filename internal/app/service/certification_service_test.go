package service

import (
	"testing"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCertificationServiceTest(t *testing.T) (CertificationService, *gorm.DB, *model.Company) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	log := testLogger()
	companyRepo := repository.NewCompanyRepository(testDB, log)
	rewardRepo := repository.NewRewardRepository(testDB, log)
	rewardSvc := NewRewardService(rewardRepo, companyRepo, testSealConfig(), testDB, log)
	svc := NewCertificationService(companyRepo, rewardSvc, testDB, log)

	company := &model.Company{
		Name:         "Cert Co",
		ContactEmail: "cert@test.example",
		Status:       model.StatusUnderReview,
	}
	testDB.Create(company)

	return svc, testDB, company
}

func TestCertificationService_UpdateScore_AppliesBadge(t *testing.T) {
	svc, testDB, company := setupCertificationServiceTest(t)

	scored, err := svc.UpdateScore(company.ID, 85)
	require.NoError(t, err)
	require.NotNil(t, scored.Score)
	assert.Equal(t, 85, *scored.Score)
	assert.Equal(t, seal.BadgeBronze, scored.BadgeLevel)
	assert.Contains(t, scored.DigitalBadgeURL, "bronze")

	// Badge change issued a reward
	var rewards []model.Reward
	testDB.Where("company_id = ?", company.ID).Find(&rewards)
	require.Len(t, rewards, 1)
	assert.Equal(t, model.RewardDigitalBadge, rewards[0].RewardType)
	assert.Nil(t, rewards[0].RenewalYear)
}

func TestCertificationService_UpdateScore_SameTierNoNewReward(t *testing.T) {
	svc, testDB, company := setupCertificationServiceTest(t)

	_, err := svc.UpdateScore(company.ID, 75)
	require.NoError(t, err)

	// A re-score within the same tier updates the score only
	scored, err := svc.UpdateScore(company.ID, 88)
	require.NoError(t, err)
	assert.Equal(t, 88, *scored.Score)
	assert.Equal(t, seal.BadgeBronze, scored.BadgeLevel)

	var count int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCertificationService_UpdateScore_TierChangeIssuesNewBadge(t *testing.T) {
	svc, testDB, company := setupCertificationServiceTest(t)

	_, err := svc.UpdateScore(company.ID, 75)
	require.NoError(t, err)
	scored, err := svc.UpdateScore(company.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, seal.BadgeGold, scored.BadgeLevel)
	assert.Contains(t, scored.DigitalBadgeURL, "gold")

	var count int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCertificationService_UpdateScore_BelowThresholdNoBadge(t *testing.T) {
	svc, testDB, company := setupCertificationServiceTest(t)

	scored, err := svc.UpdateScore(company.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, seal.BadgeNone, scored.BadgeLevel)
	assert.Empty(t, scored.DigitalBadgeURL)

	var count int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCertificationService_UpdateScore_InvalidScore(t *testing.T) {
	svc, _, company := setupCertificationServiceTest(t)

	_, err := svc.UpdateScore(company.ID, 101)
	assert.ErrorIs(t, err, seal.ErrInvalidScore)
	_, err = svc.UpdateScore(company.ID, -1)
	assert.ErrorIs(t, err, seal.ErrInvalidScore)
}

func TestCertificationService_SetStatus(t *testing.T) {
	svc, testDB, company := setupCertificationServiceTest(t)

	updated, err := svc.SetStatus(company.ID, model.StatusVerified)
	require.NoError(t, err)
	assert.Equal(t, model.StatusVerified, updated.Status)

	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.StatusVerified, reloaded.Status)
}

func TestCertificationService_SetStatus_Invalid(t *testing.T) {
	svc, _, company := setupCertificationServiceTest(t)

	_, err := svc.SetStatus(company.ID, "certified_platinum")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Draft is only reachable through the questionnaire unlock path
	_, err = svc.SetStatus(company.ID, model.StatusDraft)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCertificationService_SetStatus_DraftCompanyNotReviewable(t *testing.T) {
	svc, testDB, _ := setupCertificationServiceTest(t)

	draft := &model.Company{
		Name:         "Draft Co",
		ContactEmail: "draft@test.example",
		Status:       model.StatusDraft,
	}
	testDB.Create(draft)

	_, err := svc.SetStatus(draft.ID, model.StatusUnderReview)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}
