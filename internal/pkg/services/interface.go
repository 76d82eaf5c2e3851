package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"gramsetu/credit_lending/internal/pkg/models"
	storeModels "gramsetu/credit_lending/internal/pkg/store/models"
)

type BeneficiaryRepo interface {
	InsertBeneficiary(ctx context.Context, beneficiary models.Beneficiary) error
	BeneficiaryByID(ctx context.Context, beneficiaryID string) (*models.Beneficiary, error)
	BeneficiaryExists(ctx context.Context, beneficiaryID string) (bool, error)
	UpdateStatus(ctx context.Context, beneficiaryID string, status string) error
}

type LoanRepo interface {
	LoansByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Loan, error)
}

type RepaymentRepo interface {
	RepaymentsByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Repayment, error)
}

type ConsumptionRepo interface {
	UpsertRecord(ctx context.Context, record models.ConsumptionRecord) (string, error)
	RecordByDataID(ctx context.Context, dataID string) (*models.ConsumptionRecord, error)
	RecordsByBeneficiary(ctx context.Context, beneficiaryID string, dataType string, limit int64) ([]models.ConsumptionRecord, error)
	UpdateVerification(ctx context.Context, dataID string, status string, verifiedBy string) error
}

type CreditScoreRepo interface {
	InsertScore(ctx context.Context, score models.CreditScore) error
	LatestByBeneficiaryID(ctx context.Context, beneficiaryID string) (*models.CreditScore, error)
	CachedLatestScore(ctx context.Context, beneficiaryID string) (*storeModels.CachedScore, error)
	ScoresByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.CreditScore, error)
	ScoresFiltered(ctx context.Context, riskBand string, minScore, maxScore *int, limit int64) ([]models.CreditScore, error)
	AllScores(ctx context.Context) ([]models.CreditScore, error)
}

type ApplicationRepo interface {
	InsertApplicationWithLoan(ctx context.Context, application models.LendingApplication, loan *models.Loan) error
	ApplicationByID(ctx context.Context, applicationID string) (*models.LendingApplication, error)
	UpdateApplicationWithLoan(ctx context.Context, applicationID string, update bson.M, loan *models.Loan) error
	ApplicationsFiltered(ctx context.Context, status, beneficiaryID string, limit, offset int64) ([]models.LendingApplication, int64, error)
	AllApplications(ctx context.Context) ([]models.LendingApplication, error)
}

type DecisionPublisher interface {
	PublishDecisionEvent(ctx context.Context, event models.DecisionEvent) error
}

type ApplicantNotifier interface {
	NotifyApplicant(ctx context.Context, beneficiaryID, applicationID, status, message string) error
}
