package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
	storeModels "gramsetu/credit_lending/internal/pkg/store/models"
)

func newScoreServiceFixture() (*CreditScoreService, *MockBeneficiaryRepo, *MockLoanRepo, *MockRepaymentRepo, *MockConsumptionRepo, *MockCreditScoreRepo) {
	beneficiaryRepo := new(MockBeneficiaryRepo)
	loanRepo := new(MockLoanRepo)
	repaymentRepo := new(MockRepaymentRepo)
	consumptionRepo := new(MockConsumptionRepo)
	scoreRepo := new(MockCreditScoreRepo)
	service := NewCreditScoreService(beneficiaryRepo, loanRepo, repaymentRepo, consumptionRepo, scoreRepo)
	return service, beneficiaryRepo, loanRepo, repaymentRepo, consumptionRepo, scoreRepo
}

func activeBeneficiary(id string) *models.Beneficiary {
	return &models.Beneficiary{BeneficiaryID: id, Status: consts.BeneficiaryActive}
}

func TestCalculateScore_NewBorrower(t *testing.T) {
	service, beneficiaryRepo, loanRepo, repaymentRepo, consumptionRepo, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryByID", ctx, "BEN001").Return(activeBeneficiary("BEN001"), nil)
	loanRepo.On("LoansByBeneficiaryID", ctx, "BEN001").Return([]models.Loan{}, nil)
	repaymentRepo.On("RepaymentsByBeneficiaryID", ctx, "BEN001").Return([]models.Repayment{}, nil)
	consumptionRepo.On("RecordsByBeneficiary", ctx, "BEN001", "", int64(0)).Return([]models.ConsumptionRecord{}, nil)
	scoreRepo.On("InsertScore", ctx, mock.AnythingOfType("models.CreditScore")).Return(nil)

	summary, err := service.CalculateScore(ctx, "BEN001")

	require.NoError(t, err)
	assert.Equal(t, 50, summary.RepaymentScore)
	assert.Equal(t, 40, summary.IncomeScore)
	// round(0.6*50 + 0.4*40)
	assert.Equal(t, 46, summary.CompositeScore)
	assert.Equal(t, consts.RiskBandHighRiskHighNeed, summary.RiskBand)
	assert.Contains(t, summary.ScoreID, "SCORE_BEN001_")
	scoreRepo.AssertCalled(t, "InsertScore", ctx, mock.MatchedBy(func(score models.CreditScore) bool {
		return score.BeneficiaryID == "BEN001" &&
			score.ScoreVersion == consts.ScoreVersion &&
			score.ValidUntil.After(score.CalculatedAt.Add(-time.Second))
	}))
}

func TestCalculateScore_BeneficiaryNotFound(t *testing.T) {
	service, beneficiaryRepo, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryByID", ctx, "MISSING").Return(nil, consts.ErrorBeneficiaryNotFound)

	summary, err := service.CalculateScore(ctx, "MISSING")

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, consts.ErrorBeneficiaryNotFound)
	scoreRepo.AssertNotCalled(t, "InsertScore", mock.Anything, mock.Anything)
}

func TestCalculateScore_EstablishedBorrower(t *testing.T) {
	service, beneficiaryRepo, loanRepo, repaymentRepo, consumptionRepo, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	bill := 400.0
	beneficiaryRepo.On("BeneficiaryByID", ctx, "BEN002").Return(activeBeneficiary("BEN002"), nil)
	loanRepo.On("LoansByBeneficiaryID", ctx, "BEN002").Return([]models.Loan{
		{LoanAmount: 50000, Status: consts.LoanClosed},
	}, nil)
	repaymentRepo.On("RepaymentsByBeneficiaryID", ctx, "BEN002").Return([]models.Repayment{
		{Status: consts.RepaymentPaid, LateDays: 0},
		{Status: consts.RepaymentPaid, LateDays: 1},
	}, nil)
	consumptionRepo.On("RecordsByBeneficiary", ctx, "BEN002", "", int64(0)).Return([]models.ConsumptionRecord{
		{DataType: consts.DataTypeElectricity, Metrics: models.ConsumptionMetrics{ElectricityBill: &bill}},
	}, nil)
	scoreRepo.On("InsertScore", ctx, mock.AnythingOfType("models.CreditScore")).Return(nil)

	summary, err := service.CalculateScore(ctx, "BEN002")

	require.NoError(t, err)
	assert.Equal(t, 90, summary.RepaymentScore)
	assert.Equal(t, 74, summary.IncomeScore)
	// round(0.6*90 + 0.4*74)
	assert.Equal(t, 84, summary.CompositeScore)
	assert.Equal(t, consts.RiskBandLowRiskHighNeed, summary.RiskBand)
}

func TestLatestScore_CacheHit(t *testing.T) {
	service, _, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	calculatedAt := time.Now().UTC().Add(-time.Hour)
	scoreRepo.On("CachedLatestScore", ctx, "BEN001").Return(&storeModels.CachedScore{
		ScoreID:        "SCORE_BEN001_1",
		BeneficiaryID:  "BEN001",
		CompositeScore: 84,
		RiskBand:       consts.RiskBandLowRiskHighNeed,
		RepaymentScore: 90,
		IncomeScore:    74,
		CalculatedAt:   calculatedAt,
		ValidUntil:     calculatedAt.AddDate(0, 0, 30),
	}, nil)

	score, err := service.LatestScore(ctx, "BEN001")

	require.NoError(t, err)
	assert.Equal(t, "SCORE_BEN001_1", score.ScoreID)
	assert.Equal(t, 84, score.CompositeScore)
	scoreRepo.AssertNotCalled(t, "LatestByBeneficiaryID", mock.Anything, mock.Anything)
}

func TestLatestScore_CacheMissFallsBack(t *testing.T) {
	service, _, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	scoreRepo.On("CachedLatestScore", ctx, "BEN001").Return(nil, nil)
	scoreRepo.On("LatestByBeneficiaryID", ctx, "BEN001").Return(&models.CreditScore{ScoreID: "SCORE_BEN001_2"}, nil)

	score, err := service.LatestScore(ctx, "BEN001")

	require.NoError(t, err)
	assert.Equal(t, "SCORE_BEN001_2", score.ScoreID)
}

func TestLatestScore_NoScore(t *testing.T) {
	service, _, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	scoreRepo.On("CachedLatestScore", ctx, "BEN001").Return(nil, nil)
	scoreRepo.On("LatestByBeneficiaryID", ctx, "BEN001").Return(nil, consts.ErrorNoCreditScore)

	_, err := service.LatestScore(ctx, "BEN001")

	assert.ErrorIs(t, err, consts.ErrorNoCreditScore)
}

func TestScoreAnalytics(t *testing.T) {
	service, _, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	scoreRepo.On("AllScores", ctx).Return([]models.CreditScore{
		{CompositeScore: 15, RiskBand: consts.RiskBandHighRiskLowNeed, CalculatedAt: january},
		{CompositeScore: 55, RiskBand: consts.RiskBandHighRiskHighNeed, CalculatedAt: january},
		{CompositeScore: 80, RiskBand: consts.RiskBandLowRiskHighNeed, CalculatedAt: february},
		{CompositeScore: 95, RiskBand: consts.RiskBandLowRiskHighNeed, CalculatedAt: february},
	}, nil)

	analytics, err := service.ScoreAnalytics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, analytics.TotalScores)
	// round(245/4)
	assert.Equal(t, 61, analytics.AverageScore)
	assert.Equal(t, 2, analytics.RiskBandDistribution[consts.RiskBandLowRiskHighNeed])
	assert.Equal(t, 1, analytics.ScoreDistribution["0-20"])
	assert.Equal(t, 1, analytics.ScoreDistribution["41-60"])
	assert.Equal(t, 1, analytics.ScoreDistribution["61-80"])
	assert.Equal(t, 1, analytics.ScoreDistribution["81-100"])
	assert.Equal(t, 2, analytics.MonthlyTrends["2026-01"])
	assert.Equal(t, 2, analytics.MonthlyTrends["2026-02"])
}

func TestScoreAnalytics_Empty(t *testing.T) {
	service, _, _, _, _, scoreRepo := newScoreServiceFixture()
	ctx := context.Background()

	scoreRepo.On("AllScores", ctx).Return([]models.CreditScore{}, nil)

	analytics, err := service.ScoreAnalytics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, analytics.TotalScores)
	assert.Equal(t, 0, analytics.AverageScore)
}
