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

func setupRewardServiceTest(t *testing.T) (RewardService, *gorm.DB, *model.Company) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	log := testLogger()
	companyRepo := repository.NewCompanyRepository(testDB, log)
	rewardRepo := repository.NewRewardRepository(testDB, log)
	svc := NewRewardService(rewardRepo, companyRepo, testSealConfig(), testDB, log)

	company := &model.Company{
		Name:         "Reward Co",
		ContactEmail: "reward@test.example",
		Status:       model.StatusVerified,
		BadgeLevel:   seal.BadgeSilver,
	}
	testDB.Create(company)

	return svc, testDB, company
}

func TestRewardService_GrantRenewalRewardsTx_FullBundle(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	err := testDB.Transaction(func(tx *gorm.DB) error {
		return svc.GrantRenewalRewardsTx(tx, company.ID, 2026)
	})
	require.NoError(t, err)

	var rewards []model.Reward
	testDB.Where("company_id = ?", company.ID).Find(&rewards)
	require.Len(t, rewards, 4)

	types := map[model.RewardType]bool{}
	for _, reward := range rewards {
		types[reward.RewardType] = true
		assert.Equal(t, model.RewardDelivered, reward.Status)
		assert.NotNil(t, reward.DeliveredAt)
		assert.NotNil(t, reward.ExpiresAt)
	}
	assert.True(t, types[model.RewardDigitalBadge])
	assert.True(t, types[model.RewardCertificate])
	assert.True(t, types[model.RewardBrandToolkit])
	assert.True(t, types[model.RewardNetworkAccess])
}

func TestRewardService_GrantRenewalRewardsTx_Idempotent(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	for i := 0; i < 3; i++ {
		err := testDB.Transaction(func(tx *gorm.DB) error {
			return svc.GrantRenewalRewardsTx(tx, company.ID, 2026)
		})
		require.NoError(t, err)
	}

	var count int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(4), count)
}

func TestRewardService_GrantRenewalRewardsTx_SeparateYears(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	err := testDB.Transaction(func(tx *gorm.DB) error {
		if err := svc.GrantRenewalRewardsTx(tx, company.ID, 2026); err != nil {
			return err
		}
		return svc.GrantRenewalRewardsTx(tx, company.ID, 2027)
	})
	require.NoError(t, err)

	var count int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(8), count)
}

func TestRewardService_GrantDigitalBadgeRewardTx(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	var badgeURL string
	err := testDB.Transaction(func(tx *gorm.DB) error {
		var err error
		badgeURL, err = svc.GrantDigitalBadgeRewardTx(tx, company.ID, seal.BadgeGold)
		return err
	})
	require.NoError(t, err)
	assert.Contains(t, badgeURL, "gold")

	var reward model.Reward
	testDB.Where("company_id = ?", company.ID).First(&reward)
	assert.Equal(t, model.RewardDigitalBadge, reward.RewardType)
	assert.Nil(t, reward.RenewalYear)
	assert.Equal(t, "gold", reward.Metadata["badge_level"])
}

func TestRewardService_RequestPhysicalBadge(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	reward, err := svc.RequestPhysicalBadge(company.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RewardPhysicalBadge, reward.RewardType)
	assert.Equal(t, model.RewardPending, reward.Status)
	assert.Equal(t, string(seal.BadgeSilver), reward.Metadata["badge_level"])

	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.True(t, reloaded.PhysicalBadgeRequested)
}

func TestRewardService_RequestPhysicalBadge_CompanyNotFound(t *testing.T) {
	svc, _, _ := setupRewardServiceTest(t)

	_, err := svc.RequestPhysicalBadge(9999)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestRewardService_MarkRewardDelivered(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	reward, err := svc.RequestPhysicalBadge(company.ID)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRewardDelivered(reward.ID))

	var reloaded model.Reward
	testDB.First(&reloaded, reward.ID)
	assert.Equal(t, model.RewardDelivered, reloaded.Status)
	require.NotNil(t, reloaded.DeliveredAt)
	firstDelivery := *reloaded.DeliveredAt

	// Second call is a no-op
	require.NoError(t, svc.MarkRewardDelivered(reward.ID))
	testDB.First(&reloaded, reward.ID)
	assert.Equal(t, firstDelivery, *reloaded.DeliveredAt)
}

func TestRewardService_MarkRewardDelivered_NotFound(t *testing.T) {
	svc, _, _ := setupRewardServiceTest(t)

	err := svc.MarkRewardDelivered(4242)
	assert.ErrorIs(t, err, ErrRewardNotFound)
}

func TestRewardService_GetCompanyRewards(t *testing.T) {
	svc, testDB, company := setupRewardServiceTest(t)

	err := testDB.Transaction(func(tx *gorm.DB) error {
		return svc.GrantRenewalRewardsTx(tx, company.ID, 2026)
	})
	require.NoError(t, err)
	_, err = svc.RequestPhysicalBadge(company.ID)
	require.NoError(t, err)

	rewards, err := svc.GetCompanyRewards(company.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 5)
}
