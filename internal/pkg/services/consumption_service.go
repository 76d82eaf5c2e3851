package services

import (
	"context"
	"errors"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/store"
	"gramsetu/credit_lending/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const defaultConsumptionMonths = 12

var validate *validator.Validate = validator.New()

type ConsumptionService struct {
	beneficiaryRepo BeneficiaryRepo
	consumptionRepo ConsumptionRepo
}

func NewConsumptionService(beneficiaryRepo BeneficiaryRepo, consumptionRepo ConsumptionRepo) *ConsumptionService {
	return &ConsumptionService{
		beneficiaryRepo: beneficiaryRepo,
		consumptionRepo: consumptionRepo,
	}
}

// UploadConsumption stores one month of consumption data for a
// beneficiary. A re-upload for the same (dataType, monthYear) replaces
// the metrics and resets verification to pending.
func (s *ConsumptionService) UploadConsumption(ctx context.Context, request models.UploadConsumptionRequest) (*models.UploadConsumptionResponse, error) {
	if !utils.IsValidDataType(request.DataType) {
		return nil, consts.ErrorInvalidDataType
	}
	if !utils.IsValidMonthYear(request.MonthYear) {
		return nil, consts.ErrorInvalidMonthYear
	}

	exists, err := s.beneficiaryRepo.BeneficiaryExists(ctx, request.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, consts.ErrorBeneficiaryNotFound
	}

	dataID := store.BuildDataID(request.BeneficiaryID, request.DataType, request.MonthYear)
	status, err := s.upsert(ctx, dataID, request.BeneficiaryID, request.DataType, request.DataSource, request.MonthYear, request.Metrics, request.UploadedBy)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Consumption data %s for beneficiary %s: %s", dataID, request.BeneficiaryID, status)
	return &models.UploadConsumptionResponse{DataID: dataID, Status: status}, nil
}

// BulkUploadConsumption processes channel-partner batches record by
// record. A failing record never aborts the batch.
func (s *ConsumptionService) BulkUploadConsumption(ctx context.Context, request models.BulkUploadConsumptionRequest) (*models.BulkUploadResponse, error) {
	response := &models.BulkUploadResponse{
		TotalRecords: len(request.DataRecords),
		Results:      make([]models.BulkUploadResult, 0, len(request.DataRecords)),
	}

	for _, record := range request.DataRecords {
		result := models.BulkUploadResult{BeneficiaryID: record.BeneficiaryID}

		if err := validate.Struct(record); err != nil {
			result.Status = consts.BulkStatusError
			result.Message = err.Error()
			response.Results = append(response.Results, result)
			continue
		}
		if !utils.IsValidDataType(record.DataType) {
			result.Status = consts.BulkStatusError
			result.Message = consts.ErrorInvalidDataType.Error()
			response.Results = append(response.Results, result)
			continue
		}
		if !utils.IsValidMonthYear(record.MonthYear) {
			result.Status = consts.BulkStatusError
			result.Message = consts.ErrorInvalidMonthYear.Error()
			response.Results = append(response.Results, result)
			continue
		}

		exists, err := s.beneficiaryRepo.BeneficiaryExists(ctx, record.BeneficiaryID)
		if err != nil {
			result.Status = consts.BulkStatusError
			result.Message = err.Error()
			response.Results = append(response.Results, result)
			continue
		}
		if !exists {
			result.Status = consts.BulkStatusError
			result.Message = consts.ErrorBeneficiaryNotFound.Error()
			response.Results = append(response.Results, result)
			continue
		}

		dataID := store.BuildDataID(record.BeneficiaryID, record.DataType, record.MonthYear)
		status, err := s.upsert(ctx, dataID, record.BeneficiaryID, record.DataType, record.DataSource, record.MonthYear, record.Metrics, request.UploadedBy)
		if err != nil {
			result.Status = consts.BulkStatusError
			result.Message = err.Error()
		} else {
			result.Status = status
			result.DataID = dataID
		}
		response.Results = append(response.Results, result)
	}

	for _, result := range response.Results {
		if result.Status == consts.BulkStatusError {
			response.Failed++
		} else {
			response.Successful++
		}
	}

	logger.Info(ctx, "Bulk consumption upload by %s: %d total, %d successful, %d failed", request.UploadedBy, response.TotalRecords, response.Successful, response.Failed)
	return response, nil
}

// GetConsumption returns a beneficiary's records, newest period first.
// Limit defaults to the last twelve months.
func (s *ConsumptionService) GetConsumption(ctx context.Context, beneficiaryID, dataType string, limit int) ([]models.ConsumptionRecord, error) {
	if dataType != "" && !utils.IsValidDataType(dataType) {
		return nil, consts.ErrorInvalidDataType
	}
	if limit <= 0 {
		limit = defaultConsumptionMonths
	}

	records, err := s.consumptionRepo.RecordsByBeneficiary(ctx, beneficiaryID, dataType, int64(limit))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ConsumptionRecord{}
	}
	return records, nil
}

// VerifyConsumption marks a record verified or rejected by a field officer.
func (s *ConsumptionService) VerifyConsumption(ctx context.Context, request models.VerifyConsumptionRequest) error {
	if request.VerificationStatus != consts.VerificationVerified && request.VerificationStatus != consts.VerificationRejected {
		return consts.ErrorInvalidStatus
	}

	if _, err := s.consumptionRepo.RecordByDataID(ctx, request.DataID); err != nil {
		return err
	}
	return s.consumptionRepo.UpdateVerification(ctx, request.DataID, request.VerificationStatus, request.VerifiedBy)
}

func (s *ConsumptionService) upsert(ctx context.Context, dataID, beneficiaryID, dataType, dataSource, monthYear string, metrics models.ConsumptionMetrics, uploadedBy string) (string, error) {
	status := consts.BulkStatusCreated
	if _, err := s.consumptionRepo.RecordByDataID(ctx, dataID); err == nil {
		status = consts.BulkStatusUpdated
	} else if !errors.Is(err, consts.ErrorConsumptionRecordNotFound) {
		return "", err
	}

	record := models.ConsumptionRecord{
		DataID:        dataID,
		BeneficiaryID: beneficiaryID,
		DataType:      dataType,
		DataSource:    dataSource,
		MonthYear:     monthYear,
		Metrics:       metrics,
		UploadedBy:    uploadedBy,
	}
	if _, err := s.consumptionRepo.UpsertRecord(ctx, record); err != nil {
		return "", err
	}
	return status, nil
}
