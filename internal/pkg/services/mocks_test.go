package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"gramsetu/credit_lending/internal/pkg/models"
	storeModels "gramsetu/credit_lending/internal/pkg/store/models"
)

type MockBeneficiaryRepo struct {
	mock.Mock
}

func (m *MockBeneficiaryRepo) InsertBeneficiary(ctx context.Context, beneficiary models.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}
func (m *MockBeneficiaryRepo) BeneficiaryByID(ctx context.Context, beneficiaryID string) (*models.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Beneficiary), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockBeneficiaryRepo) BeneficiaryExists(ctx context.Context, beneficiaryID string) (bool, error) {
	args := m.Called(ctx, beneficiaryID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBeneficiaryRepo) UpdateStatus(ctx context.Context, beneficiaryID string, status string) error {
	args := m.Called(ctx, beneficiaryID, status)
	return args.Error(0)
}

type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) LoansByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Loan, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).([]models.Loan), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRepaymentRepo struct {
	mock.Mock
}

func (m *MockRepaymentRepo) RepaymentsByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Repayment, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).([]models.Repayment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockConsumptionRepo struct {
	mock.Mock
}

func (m *MockConsumptionRepo) UpsertRecord(ctx context.Context, record models.ConsumptionRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}
func (m *MockConsumptionRepo) RecordByDataID(ctx context.Context, dataID string) (*models.ConsumptionRecord, error) {
	args := m.Called(ctx, dataID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.ConsumptionRecord), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockConsumptionRepo) RecordsByBeneficiary(ctx context.Context, beneficiaryID string, dataType string, limit int64) ([]models.ConsumptionRecord, error) {
	args := m.Called(ctx, beneficiaryID, dataType, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]models.ConsumptionRecord), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockConsumptionRepo) UpdateVerification(ctx context.Context, dataID string, status string, verifiedBy string) error {
	args := m.Called(ctx, dataID, status, verifiedBy)
	return args.Error(0)
}

type MockCreditScoreRepo struct {
	mock.Mock
}

func (m *MockCreditScoreRepo) InsertScore(ctx context.Context, score models.CreditScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}
func (m *MockCreditScoreRepo) LatestByBeneficiaryID(ctx context.Context, beneficiaryID string) (*models.CreditScore, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.CreditScore), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCreditScoreRepo) CachedLatestScore(ctx context.Context, beneficiaryID string) (*storeModels.CachedScore, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).(*storeModels.CachedScore), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCreditScoreRepo) ScoresByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.CreditScore, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) != nil {
		return args.Get(0).([]models.CreditScore), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCreditScoreRepo) ScoresFiltered(ctx context.Context, riskBand string, minScore, maxScore *int, limit int64) ([]models.CreditScore, error) {
	args := m.Called(ctx, riskBand, minScore, maxScore, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]models.CreditScore), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCreditScoreRepo) AllScores(ctx context.Context) ([]models.CreditScore, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]models.CreditScore), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) InsertApplicationWithLoan(ctx context.Context, application models.LendingApplication, loan *models.Loan) error {
	args := m.Called(ctx, application, loan)
	return args.Error(0)
}
func (m *MockApplicationRepo) ApplicationByID(ctx context.Context, applicationID string) (*models.LendingApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.LendingApplication), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockApplicationRepo) UpdateApplicationWithLoan(ctx context.Context, applicationID string, update bson.M, loan *models.Loan) error {
	args := m.Called(ctx, applicationID, update, loan)
	return args.Error(0)
}
func (m *MockApplicationRepo) ApplicationsFiltered(ctx context.Context, status, beneficiaryID string, limit, offset int64) ([]models.LendingApplication, int64, error) {
	args := m.Called(ctx, status, beneficiaryID, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]models.LendingApplication), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) AllApplications(ctx context.Context) ([]models.LendingApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]models.LendingApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDecisionPublisher struct {
	mock.Mock
}

func (m *MockDecisionPublisher) PublishDecisionEvent(ctx context.Context, event models.DecisionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockApplicantNotifier struct {
	mock.Mock
}

func (m *MockApplicantNotifier) NotifyApplicant(ctx context.Context, beneficiaryID, applicationID, status, message string) error {
	args := m.Called(ctx, beneficiaryID, applicationID, status, message)
	return args.Error(0)
}
