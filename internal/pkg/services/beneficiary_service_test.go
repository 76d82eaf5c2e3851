package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

func newBeneficiaryFixture() (*BeneficiaryService, *MockBeneficiaryRepo, *MockLoanRepo, *MockCreditScoreRepo, *MockConsumptionRepo) {
	beneficiaryRepo := new(MockBeneficiaryRepo)
	loanRepo := new(MockLoanRepo)
	scoreRepo := new(MockCreditScoreRepo)
	consumptionRepo := new(MockConsumptionRepo)
	service := NewBeneficiaryService(beneficiaryRepo, loanRepo, scoreRepo, consumptionRepo)
	return service, beneficiaryRepo, loanRepo, scoreRepo, consumptionRepo
}

func TestCreateBeneficiary(t *testing.T) {
	service, beneficiaryRepo, _, _, _ := newBeneficiaryFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryExists", ctx, "BEN001").Return(false, nil)
	beneficiaryRepo.On("InsertBeneficiary", ctx, mock.AnythingOfType("models.Beneficiary")).Return(nil)

	beneficiary, err := service.CreateBeneficiary(ctx, models.CreateBeneficiaryRequest{
		BeneficiaryID:  "BEN001",
		Name:           "Lakshmi Devi",
		PhoneNumber:    "9876543210",
		ChannelPartner: "SHG_FEDERATION_01",
	})

	require.NoError(t, err)
	assert.Equal(t, consts.BeneficiaryActive, beneficiary.Status)
	assert.False(t, beneficiary.RegistrationDate.IsZero())
	beneficiaryRepo.AssertCalled(t, "InsertBeneficiary", ctx, mock.MatchedBy(func(b models.Beneficiary) bool {
		return b.BeneficiaryID == "BEN001" && b.Status == consts.BeneficiaryActive
	}))
}

func TestCreateBeneficiary_Duplicate(t *testing.T) {
	service, beneficiaryRepo, _, _, _ := newBeneficiaryFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryExists", ctx, "BEN001").Return(true, nil)

	_, err := service.CreateBeneficiary(ctx, models.CreateBeneficiaryRequest{BeneficiaryID: "BEN001"})

	assert.ErrorIs(t, err, consts.ErrorBeneficiaryAlreadyExists)
	beneficiaryRepo.AssertNotCalled(t, "InsertBeneficiary", mock.Anything, mock.Anything)
}

func TestProfile(t *testing.T) {
	service, beneficiaryRepo, loanRepo, scoreRepo, consumptionRepo := newBeneficiaryFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryByID", ctx, "BEN001").Return(activeBeneficiary("BEN001"), nil)
	loanRepo.On("LoansByBeneficiaryID", ctx, "BEN001").Return([]models.Loan{{LoanID: "LOAN_1"}}, nil)
	scoreRepo.On("LatestByBeneficiaryID", ctx, "BEN001").Return(&models.CreditScore{ScoreID: "SCORE_1"}, nil)
	consumptionRepo.On("RecordsByBeneficiary", ctx, "BEN001", "", int64(12)).Return([]models.ConsumptionRecord{{DataID: "DATA_1"}, {DataID: "DATA_2"}}, nil)

	profile, err := service.Profile(ctx, "BEN001")

	require.NoError(t, err)
	assert.Len(t, profile.Loans, 1)
	require.NotNil(t, profile.LatestScore)
	assert.Equal(t, "SCORE_1", profile.LatestScore.ScoreID)
	assert.Equal(t, 2, profile.ConsumptionCount)
}

func TestProfile_WithoutScore(t *testing.T) {
	service, beneficiaryRepo, loanRepo, scoreRepo, consumptionRepo := newBeneficiaryFixture()
	ctx := context.Background()

	beneficiaryRepo.On("BeneficiaryByID", ctx, "BEN001").Return(activeBeneficiary("BEN001"), nil)
	loanRepo.On("LoansByBeneficiaryID", ctx, "BEN001").Return(nil, nil)
	scoreRepo.On("LatestByBeneficiaryID", ctx, "BEN001").Return(nil, consts.ErrorNoCreditScore)
	consumptionRepo.On("RecordsByBeneficiary", ctx, "BEN001", "", int64(12)).Return(nil, nil)

	profile, err := service.Profile(ctx, "BEN001")

	require.NoError(t, err)
	assert.Nil(t, profile.LatestScore)
	assert.Empty(t, profile.Loans)
	assert.Equal(t, 0, profile.ConsumptionCount)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		service, beneficiaryRepo, _, _, _ := newBeneficiaryFixture()
		ctx := context.Background()
		beneficiaryRepo.On("BeneficiaryByID", ctx, "BEN001").Return(activeBeneficiary("BEN001"), nil)
		beneficiaryRepo.On("UpdateStatus", ctx, "BEN001", consts.BeneficiarySuspended).Return(nil)

		err := service.UpdateStatus(ctx, models.UpdateBeneficiaryStatusRequest{
			BeneficiaryID: "BEN001",
			Status:        consts.BeneficiarySuspended,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, _, _, _, _ := newBeneficiaryFixture()

		err := service.UpdateStatus(context.Background(), models.UpdateBeneficiaryStatusRequest{
			BeneficiaryID: "BEN001",
			Status:        "archived",
		})
		assert.ErrorIs(t, err, consts.ErrorInvalidStatus)
	})

	t.Run("beneficiary missing", func(t *testing.T) {
		service, beneficiaryRepo, _, _, _ := newBeneficiaryFixture()
		ctx := context.Background()
		beneficiaryRepo.On("BeneficiaryByID", ctx, "MISSING").Return(nil, consts.ErrorBeneficiaryNotFound)

		err := service.UpdateStatus(ctx, models.UpdateBeneficiaryStatusRequest{
			BeneficiaryID: "MISSING",
			Status:        consts.BeneficiaryInactive,
		})
		assert.ErrorIs(t, err, consts.ErrorBeneficiaryNotFound)
	})
}
