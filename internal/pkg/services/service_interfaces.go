package services

import (
	"context"
	"time"

	"gramsetu/credit_lending/internal/pkg/models"
)

type CreditScoreServiceInterface interface {
	CalculateScore(ctx context.Context, beneficiaryID string) (*models.ScoreSummary, error)
	LatestScore(ctx context.Context, beneficiaryID string) (*models.CreditScore, error)
	ScoreHistory(ctx context.Context, beneficiaryID string) ([]models.CreditScore, error)
	ListScores(ctx context.Context, riskBand string, minScore, maxScore *int, limit int64) ([]models.CreditScore, error)
	ScoreAnalytics(ctx context.Context) (*models.ScoreAnalytics, error)
}

type LendingApplicationServiceInterface interface {
	SubmitApplication(ctx context.Context, request models.SubmitApplicationRequest) (*models.ApplicationResponse, error)
	ReviewApplication(ctx context.Context, request models.ReviewApplicationRequest) (*models.ReviewResponse, error)
	ListApplications(ctx context.Context, status, beneficiaryID string, limit, offset int) (*models.ApplicationPage, error)
	LendingAnalytics(ctx context.Context, fromDate, toDate *time.Time) (*models.LendingAnalytics, error)
}

type ConsumptionServiceInterface interface {
	UploadConsumption(ctx context.Context, request models.UploadConsumptionRequest) (*models.UploadConsumptionResponse, error)
	BulkUploadConsumption(ctx context.Context, request models.BulkUploadConsumptionRequest) (*models.BulkUploadResponse, error)
	GetConsumption(ctx context.Context, beneficiaryID, dataType string, limit int) ([]models.ConsumptionRecord, error)
	VerifyConsumption(ctx context.Context, request models.VerifyConsumptionRequest) error
}

type BeneficiaryServiceInterface interface {
	CreateBeneficiary(ctx context.Context, request models.CreateBeneficiaryRequest) (*models.Beneficiary, error)
	GetBeneficiary(ctx context.Context, beneficiaryID string) (*models.Beneficiary, error)
	Profile(ctx context.Context, beneficiaryID string) (*models.BeneficiaryProfile, error)
	UpdateStatus(ctx context.Context, request models.UpdateBeneficiaryStatusRequest) error
}
