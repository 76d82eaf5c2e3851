package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RepaymentComponents struct {
	OnTimePayments int     `bson:"onTimePayments" json:"onTimePayments"`
	TotalPayments  int     `bson:"totalPayments" json:"totalPayments"`
	AverageDelay   float64 `bson:"averageDelay" json:"averageDelay"`
	NpaHistory     bool    `bson:"npaHistory" json:"npaHistory"`
}

type LoanUtilization struct {
	TotalLoansCount int     `bson:"totalLoansCount" json:"totalLoansCount"`
	TotalLoanAmount float64 `bson:"totalLoanAmount" json:"totalLoanAmount"`
	RepeatBorrower  bool    `bson:"repeatBorrower" json:"repeatBorrower"`
}

type IncomeIndicators struct {
	EstimatedMonthlyIncome *float64 `bson:"estimatedMonthlyIncome,omitempty" json:"estimatedMonthlyIncome,omitempty"`
	IncomeStability        float64  `bson:"incomeStability" json:"incomeStability"`
	ConsumptionPattern     string   `bson:"consumptionPattern" json:"consumptionPattern"`
}

type ScoreComponents struct {
	RepaymentHistory RepaymentComponents `bson:"repaymentHistory" json:"repaymentHistory"`
	LoanUtilization  LoanUtilization     `bson:"loanUtilization" json:"loanUtilization"`
	IncomeIndicators IncomeIndicators    `bson:"incomeIndicators" json:"incomeIndicators"`
}

// ExplanationFactor is one entry of the advisory explanation trail. Impacts are
// display values and are not required to reconcile with the score arithmetic.
type ExplanationFactor struct {
	Factor      string  `bson:"factor" json:"factor"`
	Impact      float64 `bson:"impact" json:"impact"`
	Description string  `bson:"description" json:"description"`
}

type CreditScore struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	ScoreID          string              `bson:"scoreId" json:"scoreId"`
	BeneficiaryID    string              `bson:"beneficiaryId" json:"beneficiaryId"`
	ScoreVersion     string              `bson:"scoreVersion" json:"scoreVersion"`
	RepaymentScore   int                 `bson:"repaymentScore" json:"repaymentScore"`
	IncomeScore      int                 `bson:"incomeScore" json:"incomeScore"`
	CompositeScore   int                 `bson:"compositeScore" json:"compositeScore"`
	RiskBand         string              `bson:"riskBand" json:"riskBand"`
	ScoreComponents  ScoreComponents     `bson:"scoreComponents" json:"scoreComponents"`
	ModelExplanation []ExplanationFactor `bson:"modelExplanation" json:"modelExplanation"`
	CalculatedAt     time.Time           `bson:"calculatedAt" json:"calculatedAt"`
	ValidUntil       time.Time           `bson:"validUntil" json:"validUntil"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
}

// ScoreSummary is the caller-facing result of a score calculation.
type ScoreSummary struct {
	ScoreID        string `json:"scoreId"`
	CompositeScore int    `json:"compositeScore"`
	RiskBand       string `json:"riskBand"`
	RepaymentScore int    `json:"repaymentScore"`
	IncomeScore    int    `json:"incomeScore"`
}
