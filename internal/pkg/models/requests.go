package models

type CalculateScoreRequest struct {
	BeneficiaryID string `json:"beneficiaryId" binding:"required"`
	ScoreVersion  string `json:"scoreVersion,omitempty"`
}

type SubmitApplicationRequest struct {
	BeneficiaryID   string  `json:"beneficiaryId" binding:"required"`
	RequestedAmount float64 `json:"requestedAmount" binding:"required,gt=0"`
	Purpose         string  `json:"purpose" binding:"required"`
	RequestedTenure *int    `json:"requestedTenure,omitempty" binding:"omitempty,gt=0"`
}

type ReviewApplicationRequest struct {
	ApplicationID   string   `json:"applicationId" binding:"required"`
	Decision        string   `json:"decision" binding:"required,oneof=approve reject"`
	ApprovedAmount  *float64 `json:"approvedAmount,omitempty" binding:"omitempty,gt=0"`
	ApprovedTenure  *int     `json:"approvedTenure,omitempty" binding:"omitempty,gt=0"`
	InterestRate    *float64 `json:"interestRate,omitempty" binding:"omitempty,gt=0"`
	Conditions      []string `json:"conditions,omitempty"`
	RejectionReason string   `json:"rejectionReason,omitempty"`
	ReviewedBy      string   `json:"reviewedBy" binding:"required"`
}

type UploadConsumptionRequest struct {
	BeneficiaryID string             `json:"beneficiaryId" binding:"required"`
	DataType      string             `json:"dataType" binding:"required,oneof=electricity mobile utility survey"`
	DataSource    string             `json:"dataSource" binding:"required"`
	MonthYear     string             `json:"monthYear" binding:"required"`
	Metrics       ConsumptionMetrics `json:"metrics" binding:"required"`
	UploadedBy    string             `json:"uploadedBy" binding:"required"`
}

// BulkConsumptionRecord is validated per record inside the service so
// that one malformed record reports an error result instead of failing
// the whole batch.
type BulkConsumptionRecord struct {
	BeneficiaryID string             `json:"beneficiaryId" validate:"required"`
	DataType      string             `json:"dataType" validate:"required,oneof=electricity mobile utility survey"`
	DataSource    string             `json:"dataSource" validate:"required"`
	MonthYear     string             `json:"monthYear" validate:"required"`
	Metrics       ConsumptionMetrics `json:"metrics"`
}

type BulkUploadConsumptionRequest struct {
	DataRecords []BulkConsumptionRecord `json:"dataRecords" binding:"required,min=1"`
	UploadedBy  string                  `json:"uploadedBy" binding:"required"`
}

type VerifyConsumptionRequest struct {
	DataID             string `json:"dataId" binding:"required"`
	VerificationStatus string `json:"verificationStatus" binding:"required,oneof=verified rejected"`
	VerifiedBy         string `json:"verifiedBy" binding:"required"`
}

type CreateBeneficiaryRequest struct {
	BeneficiaryID   string          `json:"beneficiaryId" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	PhoneNumber     string          `json:"phoneNumber" binding:"required"`
	Address         Address         `json:"address"`
	DemographicInfo DemographicInfo `json:"demographicInfo"`
	KYCDocuments    KYCDocuments    `json:"kycDocuments"`
	ChannelPartner  string          `json:"channelPartner"`
}

type UpdateBeneficiaryStatusRequest struct {
	BeneficiaryID string `json:"beneficiaryId" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=active inactive suspended"`
}
