package consts

// Beneficiary lifecycle states
const (
	BeneficiaryActive    = "active"
	BeneficiaryInactive  = "inactive"
	BeneficiarySuspended = "suspended"
)

// Loan lifecycle states
const (
	LoanApplied    = "applied"
	LoanSanctioned = "sanctioned"
	LoanDisbursed  = "disbursed"
	LoanClosed     = "closed"
	LoanNPA        = "npa"
)

// Repayment states
const (
	RepaymentPaid    = "paid"
	RepaymentOverdue = "overdue"
	RepaymentPartial = "partial"
	RepaymentMissed  = "missed"
)

// Consumption data types
const (
	DataTypeElectricity = "electricity"
	DataTypeMobile      = "mobile"
	DataTypeUtility     = "utility"
	DataTypeSurvey      = "survey"
)

// Verification states for consumption records
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Lending application approval states
const (
	StatusAutoApproved = "auto_approved"
	StatusManualReview = "manual_review"
	StatusRejected     = "rejected"
	StatusCancelled    = "cancelled"
)

// Risk bands: risk from repayment reliability crossed with estimated need
const (
	RiskBandLowRiskHighNeed  = "Low Risk-High Need"
	RiskBandLowRiskLowNeed   = "Low Risk-Low Need"
	RiskBandHighRiskHighNeed = "High Risk-High Need"
	RiskBandHighRiskLowNeed  = "High Risk-Low Need"
)

// Need levels and consumption patterns
const (
	NeedLow    = "low"
	NeedMedium = "medium"
	NeedHigh   = "high"

	PatternLow     = "low"
	PatternMedium  = "medium"
	PatternHigh    = "high"
	PatternUnknown = "unknown"
)

// Review decisions
const (
	ReviewDecisionApprove = "approve"
	ReviewDecisionReject  = "reject"
)

// Per-record outcomes of a bulk consumption upload
const (
	BulkStatusCreated = "created"
	BulkStatusUpdated = "updated"
	BulkStatusError   = "error"
)

const (
	ScoreVersion     = "v1.0"
	AutoApprovedBy   = "AUTO_SYSTEM"
	DatetimeLayout   = "2006-01-02T15:04:05.000Z07:00"
	MonthYearPattern = `^\d{4}-(0[1-9]|1[0-2])$`
)

var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
