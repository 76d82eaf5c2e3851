package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LendingApplication struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ApplicationID        string             `bson:"applicationId" json:"applicationId"`
	BeneficiaryID        string             `bson:"beneficiaryId" json:"beneficiaryId"`
	RequestedAmount      float64            `bson:"requestedAmount" json:"requestedAmount"`
	Purpose              string             `bson:"purpose" json:"purpose"`
	RequestedTenure      *int               `bson:"requestedTenure,omitempty" json:"requestedTenure,omitempty"`
	CreditScoreID        string             `bson:"creditScoreId" json:"creditScoreId"`
	AutoApprovalEligible bool               `bson:"autoApprovalEligible" json:"autoApprovalEligible"`
	ApprovalStatus       string             `bson:"approvalStatus" json:"approvalStatus"`
	ApprovedAmount       *float64           `bson:"approvedAmount,omitempty" json:"approvedAmount,omitempty"`
	ApprovedTenure       *int               `bson:"approvedTenure,omitempty" json:"approvedTenure,omitempty"`
	InterestRate         *float64           `bson:"interestRate,omitempty" json:"interestRate,omitempty"`
	Conditions           []string           `bson:"conditions,omitempty" json:"conditions,omitempty"`
	ProcessedAt          *time.Time         `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
	ProcessingTime       *int               `bson:"processingTime,omitempty" json:"processingTime,omitempty"`
	ReviewedBy           string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	RejectionReason      string             `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsTerminal reports whether the application can no longer be reviewed.
func (a LendingApplication) IsTerminal() bool {
	return a.ApprovalStatus == "rejected" || a.ApprovalStatus == "cancelled"
}
