package models

import "time"

type ApplicationResponse struct {
	ApplicationID  string   `json:"applicationId"`
	Status         string   `json:"status"`
	ApprovedAmount *float64 `json:"approvedAmount,omitempty"`
	ProcessingTime *int     `json:"processingTime,omitempty"`
	Message        string   `json:"message"`
}

type ReviewResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ApplicationPage is a cursor-free page of applications, newest first.
type ApplicationPage struct {
	Applications []LendingApplication `json:"applications"`
	Total        int64                `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

// BeneficiaryProfile is the joined presentation view of one beneficiary.
type BeneficiaryProfile struct {
	Beneficiary      Beneficiary         `json:"beneficiary"`
	Loans            []Loan              `json:"loans"`
	LatestScore      *CreditScore        `json:"latestScore,omitempty"`
	ConsumptionCount int                 `json:"consumptionCount"`
	Consumption      []ConsumptionRecord `json:"consumption"`
}

type ScoreAnalytics struct {
	TotalScores          int            `json:"totalScores"`
	AverageScore         int            `json:"averageScore"`
	RiskBandDistribution map[string]int `json:"riskBandDistribution"`
	ScoreDistribution    map[string]int `json:"scoreDistribution"`
	MonthlyTrends        map[string]int `json:"monthlyTrends"`
}

type LendingAnalytics struct {
	TotalApplications     int            `json:"totalApplications"`
	AutoApproved          int            `json:"autoApproved"`
	ManualReview          int            `json:"manualReview"`
	Rejected              int            `json:"rejected"`
	TotalApprovedAmount   float64        `json:"totalApprovedAmount"`
	AverageProcessingTime int            `json:"averageProcessingTime"`
	AutoApprovalRate      int            `json:"autoApprovalRate"`
	PurposeDistribution   map[string]int `json:"purposeDistribution"`
	DailyApplications     map[string]int `json:"dailyApplications"`
}

type UploadConsumptionResponse struct {
	DataID string `json:"dataId"`
	Status string `json:"status"`
}

type BulkUploadResult struct {
	BeneficiaryID string `json:"beneficiaryId"`
	Status        string `json:"status"`
	DataID        string `json:"dataId,omitempty"`
	Message       string `json:"message,omitempty"`
}

type BulkUploadResponse struct {
	TotalRecords int                `json:"totalRecords"`
	Successful   int                `json:"successful"`
	Failed       int                `json:"failed"`
	Results      []BulkUploadResult `json:"results"`
}

// DecisionEvent is published to Kafka for every processed or reviewed application.
type DecisionEvent struct {
	ApplicationID   string    `json:"applicationId"`
	BeneficiaryID   string    `json:"beneficiaryId"`
	Status          string    `json:"status"`
	RequestedAmount float64   `json:"requestedAmount"`
	ApprovedAmount  *float64  `json:"approvedAmount,omitempty"`
	InterestRate    *float64  `json:"interestRate,omitempty"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	ReviewedBy      string    `json:"reviewedBy,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// NotificationMessage is the payload sent to the notification topic.
type NotificationMessage struct {
	BeneficiaryID string    `json:"beneficiaryId"`
	ApplicationID string    `json:"applicationId"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sentAt"`
}
