package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MobileRecharge struct {
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
}

type UtilityBill struct {
	Type   string    `bson:"type" json:"type"`
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
}

type SurveyData struct {
	HouseholdIncome *float64 `bson:"householdIncome,omitempty" json:"householdIncome,omitempty"`
	Assets          []string `bson:"assets,omitempty" json:"assets,omitempty"`
	Expenses        *float64 `bson:"expenses,omitempty" json:"expenses,omitempty"`
}

// ConsumptionMetrics is the dataType-dependent payload of a consumption record.
// Only the fields matching the record's dataType are populated.
type ConsumptionMetrics struct {
	ElectricityUnits *float64         `bson:"electricityUnits,omitempty" json:"electricityUnits,omitempty"`
	ElectricityBill  *float64         `bson:"electricityBill,omitempty" json:"electricityBill,omitempty"`
	MobileRecharges  []MobileRecharge `bson:"mobileRecharges,omitempty" json:"mobileRecharges,omitempty"`
	UtilityBills     []UtilityBill    `bson:"utilityBills,omitempty" json:"utilityBills,omitempty"`
	SurveyData       *SurveyData      `bson:"surveyData,omitempty" json:"surveyData,omitempty"`
}

// ConsumptionRecord is a utility/spend proxy used to estimate income.
// One record exists per (beneficiaryId, dataType, monthYear); uploads for the
// same triple update the existing record.
type ConsumptionRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DataID             string             `bson:"dataId" json:"dataId"`
	BeneficiaryID      string             `bson:"beneficiaryId" json:"beneficiaryId"`
	DataType           string             `bson:"dataType" json:"dataType"`
	DataSource         string             `bson:"dataSource" json:"dataSource"`
	MonthYear          string             `bson:"monthYear" json:"monthYear"`
	Metrics            ConsumptionMetrics `bson:"metrics" json:"metrics"`
	UploadedBy         string             `bson:"uploadedBy" json:"uploadedBy"`
	VerificationStatus string             `bson:"verificationStatus" json:"verificationStatus"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
