package services

import (
	"context"
	"errors"
	"time"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/utils"
)

type BeneficiaryService struct {
	beneficiaryRepo BeneficiaryRepo
	loanRepo        LoanRepo
	scoreRepo       CreditScoreRepo
	consumptionRepo ConsumptionRepo
}

func NewBeneficiaryService(beneficiaryRepo BeneficiaryRepo, loanRepo LoanRepo, scoreRepo CreditScoreRepo, consumptionRepo ConsumptionRepo) *BeneficiaryService {
	return &BeneficiaryService{
		beneficiaryRepo: beneficiaryRepo,
		loanRepo:        loanRepo,
		scoreRepo:       scoreRepo,
		consumptionRepo: consumptionRepo,
	}
}

func (s *BeneficiaryService) CreateBeneficiary(ctx context.Context, request models.CreateBeneficiaryRequest) (*models.Beneficiary, error) {
	exists, err := s.beneficiaryRepo.BeneficiaryExists(ctx, request.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, consts.ErrorBeneficiaryAlreadyExists
	}

	now := time.Now().UTC()
	beneficiary := models.Beneficiary{
		BeneficiaryID:    request.BeneficiaryID,
		Name:             request.Name,
		PhoneNumber:      request.PhoneNumber,
		Address:          request.Address,
		DemographicInfo:  request.DemographicInfo,
		KYCDocuments:     request.KYCDocuments,
		RegistrationDate: now,
		Status:           consts.BeneficiaryActive,
		ChannelPartner:   request.ChannelPartner,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.beneficiaryRepo.InsertBeneficiary(ctx, beneficiary); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Registered beneficiary %s via %s", request.BeneficiaryID, request.ChannelPartner)
	return &beneficiary, nil
}

func (s *BeneficiaryService) GetBeneficiary(ctx context.Context, beneficiaryID string) (*models.Beneficiary, error) {
	return s.beneficiaryRepo.BeneficiaryByID(ctx, beneficiaryID)
}

// Profile joins the beneficiary with their loans, latest score and
// recent consumption history for the field-officer view.
func (s *BeneficiaryService) Profile(ctx context.Context, beneficiaryID string) (*models.BeneficiaryProfile, error) {
	beneficiary, err := s.beneficiaryRepo.BeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.LoansByBeneficiaryID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []models.Loan{}
	}

	var latestScore *models.CreditScore
	score, err := s.scoreRepo.LatestByBeneficiaryID(ctx, beneficiaryID)
	if err == nil {
		latestScore = score
	} else if !errors.Is(err, consts.ErrorNoCreditScore) {
		return nil, err
	}

	consumption, err := s.consumptionRepo.RecordsByBeneficiary(ctx, beneficiaryID, "", defaultConsumptionMonths)
	if err != nil {
		return nil, err
	}
	if consumption == nil {
		consumption = []models.ConsumptionRecord{}
	}

	return &models.BeneficiaryProfile{
		Beneficiary:      *beneficiary,
		Loans:            loans,
		LatestScore:      latestScore,
		ConsumptionCount: len(consumption),
		Consumption:      consumption,
	}, nil
}

func (s *BeneficiaryService) UpdateStatus(ctx context.Context, request models.UpdateBeneficiaryStatusRequest) error {
	if !utils.IsValidBeneficiaryStatus(request.Status) {
		return consts.ErrorInvalidStatus
	}

	if _, err := s.beneficiaryRepo.BeneficiaryByID(ctx, request.BeneficiaryID); err != nil {
		return err
	}
	return s.beneficiaryRepo.UpdateStatus(ctx, request.BeneficiaryID, request.Status)
}
