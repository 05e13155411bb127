package service

import (
	"testing"
	"time"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testSealConfig() *config.SealConfig {
	return &config.SealConfig{
		IssueResponseWindow: 720 * time.Hour,
		RenewalPeriod:       8760 * time.Hour,
		ReminderDaysAhead:   30,
		AssetBaseURL:        "https://assets.test.example",
	}
}

func setupRenewalServiceTest(t *testing.T) (RenewalService, *gorm.DB, *model.Company) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	log := testLogger()
	cfg := testSealConfig()
	companyRepo := repository.NewCompanyRepository(testDB, log)
	renewalRepo := repository.NewRenewalRepository(testDB, log)
	rewardRepo := repository.NewRewardRepository(testDB, log)
	rewardSvc := NewRewardService(rewardRepo, companyRepo, cfg, testDB, log)
	svc := NewRenewalService(renewalRepo, companyRepo, rewardSvc, cfg, testDB, log)

	company := &model.Company{
		Name:          "Renewal Co",
		ContactEmail:  "renewal@test.example",
		EmployeeCount: 12,
		Status:        model.StatusVerified,
	}
	testDB.Create(company)

	return svc, testDB, company
}

func TestRenewalService_CreateRenewal_Pending(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	renewal, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:   company.ID,
		RenewalYear: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, renewal.PaymentStatus)
	assert.Equal(t, seal.FeeSmallTierCents, renewal.AmountCents)
	assert.Nil(t, renewal.PaymentDate)

	// Company mirrors refreshed, no rewards yet
	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.PaymentPending, reloaded.PaymentStatus)
	assert.Equal(t, renewal.AmountCents, reloaded.RenewalAmountCents)
	require.NotNil(t, reloaded.RenewalDueDate)

	var rewardCount int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&rewardCount)
	assert.Equal(t, int64(0), rewardCount)
}

func TestRenewalService_CreateRenewal_FeeFromHeadcount(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	company.EmployeeCount = 40
	testDB.Save(company)

	renewal, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:   company.ID,
		RenewalYear: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, seal.FeeMediumTierCents, renewal.AmountCents)
}

func TestRenewalService_CreateRenewal_TransactionIDMeansPaid(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	// The transaction ID alone decides the status; no separate flag exists
	renewal, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:            company.ID,
		RenewalYear:          2026,
		PaymentTransactionID: "txn-001",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, renewal.PaymentStatus)
	assert.NotNil(t, renewal.PaymentDate)

	var rewards []model.Reward
	testDB.Where("company_id = ?", company.ID).Find(&rewards)
	assert.Len(t, rewards, 4)
	for _, reward := range rewards {
		require.NotNil(t, reward.RenewalYear)
		assert.Equal(t, 2026, *reward.RenewalYear)
		assert.Equal(t, model.RewardDelivered, reward.Status)
	}

	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.Equal(t, model.PaymentPaid, reloaded.PaymentStatus)
	assert.True(t, reloaded.PeaceSealCenterAccess)
}

func TestRenewalService_CreateRenewal_NoTransactionIDStaysPending(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	renewal, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:   company.ID,
		RenewalYear: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, renewal.PaymentStatus)
	assert.Empty(t, renewal.PaymentTransactionID)

	// Nothing a pending renewal must not have: no center access, no bundle
	var reloaded model.Company
	testDB.First(&reloaded, company.ID)
	assert.False(t, reloaded.PeaceSealCenterAccess)

	var rewardCount int64
	testDB.Model(&model.Reward{}).Where("company_id = ?", company.ID).Count(&rewardCount)
	assert.Equal(t, int64(0), rewardCount)
}

func TestRenewalService_CreateRenewal_SettlementDate(t *testing.T) {
	svc, _, company := setupRenewalServiceTest(t)

	settled := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	renewal, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:            company.ID,
		RenewalYear:          2026,
		PaymentTransactionID: "txn-webhook",
		PaymentDate:          &settled,
	})
	require.NoError(t, err)
	require.NotNil(t, renewal.PaymentDate)
	assert.True(t, renewal.PaymentDate.Equal(settled))
}

func TestRenewalService_CreateRenewal_Duplicate(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	require.NoError(t, err)

	_, err = svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	assert.ErrorIs(t, err, ErrDuplicateRenewal)

	var count int64
	testDB.Model(&model.Renewal{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRenewalService_CreateRenewal_DifferentYearsAllowed(t *testing.T) {
	svc, _, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	require.NoError(t, err)
	_, err = svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2027})
	assert.NoError(t, err)
}

func TestRenewalService_ProcessRenewalPayment(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	require.NoError(t, err)

	renewal, err := svc.ProcessRenewalPayment(company.ID, 2026, "txn-pay-1", nil)
	require.NoError(t, err)
	assert.True(t, renewal.Paid())
	assert.Equal(t, "txn-pay-1", renewal.PaymentTransactionID)
	require.NotNil(t, renewal.PaymentDate)

	var rewards []model.Reward
	testDB.Where("company_id = ?", company.ID).Find(&rewards)
	assert.Len(t, rewards, 4)
}

func TestRenewalService_ProcessRenewalPayment_Idempotent(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	require.NoError(t, err)

	_, err = svc.ProcessRenewalPayment(company.ID, 2026, "txn-pay-1", nil)
	require.NoError(t, err)
	_, err = svc.ProcessRenewalPayment(company.ID, 2026, "txn-pay-retry", nil)
	require.NoError(t, err)

	// Retry did not duplicate the bundle or overwrite the transaction
	var rewards []model.Reward
	testDB.Where("company_id = ?", company.ID).Find(&rewards)
	assert.Len(t, rewards, 4)

	var reloaded model.Renewal
	testDB.Where("company_id = ? AND renewal_year = ?", company.ID, 2026).First(&reloaded)
	assert.Equal(t, "txn-pay-1", reloaded.PaymentTransactionID)
}

func TestRenewalService_ProcessRenewalPayment_SettlementDate(t *testing.T) {
	svc, _, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{CompanyID: company.ID, RenewalYear: 2026})
	require.NoError(t, err)

	settled := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	renewal, err := svc.ProcessRenewalPayment(company.ID, 2026, "txn-settled", &settled)
	require.NoError(t, err)
	require.NotNil(t, renewal.PaymentDate)
	assert.True(t, renewal.PaymentDate.Equal(settled))
}

func TestRenewalService_ProcessRenewalPayment_NotFound(t *testing.T) {
	svc, _, company := setupRenewalServiceTest(t)

	_, err := svc.ProcessRenewalPayment(company.ID, 2030, "txn", nil)
	assert.ErrorIs(t, err, ErrRenewalNotFound)
}

func TestRenewalService_CalculateRenewalFee(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	fee, err := svc.CalculateRenewalFee(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.FeeSmallTierCents, fee)

	company.EmployeeCount = 500
	testDB.Save(company)

	fee, err = svc.CalculateRenewalFee(company.ID)
	require.NoError(t, err)
	assert.Equal(t, seal.FeeLargeTierCents, fee)
}

func TestRenewalService_GetExpiringRenewals(t *testing.T) {
	svc, testDB, company := setupRenewalServiceTest(t)

	_, err := svc.CreateRenewal(CreateRenewalInput{
		CompanyID:            company.ID,
		RenewalYear:          2026,
		PaymentTransactionID: "txn-exp",
	})
	require.NoError(t, err)

	// Pull the expiry into the reminder window
	soon := time.Now().Add(10 * 24 * time.Hour)
	testDB.Model(&model.Renewal{}).
		Where("company_id = ?", company.ID).
		Update("expires_at", soon)

	expiring, err := svc.GetExpiringRenewals(30 * 24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, company.ID, expiring[0].CompanyID)
	assert.Equal(t, company.Name, expiring[0].CompanyName)

	// Outside the window
	expiring, err = svc.GetExpiringRenewals(5 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Len(t, expiring, 0)
}
