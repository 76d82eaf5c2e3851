package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Loan struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LoanID           string             `bson:"loanId" json:"loanId"`
	BeneficiaryID    string             `bson:"beneficiaryId" json:"beneficiaryId"`
	LoanAmount       float64            `bson:"loanAmount" json:"loanAmount"`
	LoanTenure       int                `bson:"loanTenure" json:"loanTenure"`
	InterestRate     float64            `bson:"interestRate" json:"interestRate"`
	Purpose          string             `bson:"purpose" json:"purpose"`
	SanctionDate     time.Time          `bson:"sanctionDate" json:"sanctionDate"`
	DisbursementDate *time.Time         `bson:"disbursementDate,omitempty" json:"disbursementDate,omitempty"`
	MaturityDate     time.Time          `bson:"maturityDate" json:"maturityDate"`
	Status           string             `bson:"status" json:"status"`
	LoanType         string             `bson:"loanType" json:"loanType"`
	ChannelPartner   string             `bson:"channelPartner" json:"channelPartner"`
	ApprovedBy       string             `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Repayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RepaymentID   string             `bson:"repaymentId" json:"repaymentId"`
	LoanID        string             `bson:"loanId" json:"loanId"`
	BeneficiaryID string             `bson:"beneficiaryId" json:"beneficiaryId"`
	EMIAmount     float64            `bson:"emiAmount" json:"emiAmount"`
	PaidAmount    float64            `bson:"paidAmount" json:"paidAmount"`
	DueDate       time.Time          `bson:"dueDate" json:"dueDate"`
	PaidDate      *time.Time         `bson:"paidDate,omitempty" json:"paidDate,omitempty"`
	Status        string             `bson:"status" json:"status"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	LateDays      int                `bson:"lateDays" json:"lateDays"`
	PenaltyAmount float64            `bson:"penaltyAmount,omitempty" json:"penaltyAmount,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
