package consts

import "gramsetu/credit_lending/internal/pkg/models"

// Error kinds; every CustomError carries one so handlers can map to a status
// without string matching.
const (
	KindNotFound            = "NOT_FOUND"
	KindInvalidState        = "INVALID_STATE"
	KindMissingPrerequisite = "MISSING_PREREQUISITE"
	KindExpired             = "EXPIRED"
	KindValidationError     = "VALIDATION_ERROR"
	KindInternal            = "INTERNAL"
)

var (
	ErrorBeneficiaryNotFound = &models.CustomError{
		Kind:    KindNotFound,
		Code:    "GRAMSETU_LENDING_BENEFICIARY_NOT_FOUND",
		Message: "Beneficiary not found",
	}
	ErrorBeneficiaryNotActive = &models.CustomError{
		Kind:    KindInvalidState,
		Code:    "GRAMSETU_LENDING_BENEFICIARY_NOT_ACTIVE",
		Message: "Beneficiary is not active",
	}
	ErrorBeneficiaryAlreadyExists = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_BENEFICIARY_ALREADY_EXISTS",
		Message: "Beneficiary with this ID already exists",
	}
	ErrorNoCreditScore = &models.CustomError{
		Kind:    KindMissingPrerequisite,
		Code:    "GRAMSETU_LENDING_NO_CREDIT_SCORE",
		Message: "No credit score available. Please calculate credit score first.",
	}
	ErrorCreditScoreExpired = &models.CustomError{
		Kind:    KindExpired,
		Code:    "GRAMSETU_LENDING_CREDIT_SCORE_EXPIRED",
		Message: "Credit score has expired. Please recalculate credit score.",
	}
	ErrorApplicationNotFound = &models.CustomError{
		Kind:    KindNotFound,
		Code:    "GRAMSETU_LENDING_APPLICATION_NOT_FOUND",
		Message: "Application not found",
	}
	ErrorApplicationAlreadyFinal = &models.CustomError{
		Kind:    KindInvalidState,
		Code:    "GRAMSETU_LENDING_APPLICATION_ALREADY_FINAL",
		Message: "Cannot review an application that has already been rejected or cancelled",
	}
	ErrorConsumptionRecordNotFound = &models.CustomError{
		Kind:    KindNotFound,
		Code:    "GRAMSETU_LENDING_CONSUMPTION_RECORD_NOT_FOUND",
		Message: "Consumption record not found",
	}
	ErrorInvalidRequestedAmount = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_VALIDATION_AMOUNT_INVALID",
		Message: "Requested amount must be greater than zero",
	}
	ErrorInvalidReviewDecision = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_VALIDATION_DECISION_INVALID",
		Message: "Review decision must be approve or reject",
	}
	ErrorInvalidMonthYear = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_VALIDATION_MONTH_YEAR_INVALID",
		Message: "monthYear must be in YYYY-MM format",
	}
	ErrorInvalidDataType = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_VALIDATION_DATA_TYPE_INVALID",
		Message: "dataType must be one of electricity, mobile, utility, survey",
	}
	ErrorInvalidStatus = &models.CustomError{
		Kind:    KindValidationError,
		Code:    "GRAMSETU_LENDING_VALIDATION_STATUS_INVALID",
		Message: "Status value is not allowed",
	}
	ErrorNoDocumentFound = &models.CustomError{
		Kind:    KindNotFound,
		Code:    "GRAMSETU_LENDING_INTERNAL_ERROR_NO_DOCUMENTS_FOUND",
		Message: "No documents in result",
	}
)
