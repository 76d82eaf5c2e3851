package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

func TestDetermineRiskBand(t *testing.T) {
	tests := []struct {
		name           string
		repaymentScore int
		incomeScore    int
		needLevel      string
		expected       string
	}{
		{"reliable and needy", 80, 70, consts.NeedHigh, consts.RiskBandLowRiskHighNeed},
		{"reliable low need", 80, 40, consts.NeedLow, consts.RiskBandLowRiskLowNeed},
		{"unreliable but needy", 50, 70, consts.NeedHigh, consts.RiskBandHighRiskHighNeed},
		{"unreliable low need", 50, 40, consts.NeedLow, consts.RiskBandHighRiskLowNeed},
		{"income score alone can mark high need", 80, 60, consts.NeedLow, consts.RiskBandLowRiskHighNeed},
		{"repayment boundary is inclusive", 70, 40, consts.NeedLow, consts.RiskBandLowRiskLowNeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineRiskBand(tt.repaymentScore, tt.incomeScore, tt.needLevel))
		})
	}
}

func TestCompose_WeightedRounding(t *testing.T) {
	repayment := RepaymentResult{Score: 90}
	income := IncomeResult{Score: 74, NeedLevel: consts.NeedHigh}

	composite, band, _ := Compose(repayment, income)

	// 0.6*90 + 0.4*74 = 83.6
	assert.Equal(t, 84, composite)
	assert.Equal(t, consts.RiskBandLowRiskHighNeed, band)
}

func TestCompose_ExplanationForNewBorrower(t *testing.T) {
	repayment := CalculateRepaymentScore(nil, nil)
	income := CalculateIncomeScore(nil)

	_, _, explanation := Compose(repayment, income)

	require.Len(t, explanation, 1)
	assert.Equal(t, "Data Availability", explanation[0].Factor)
	assert.Equal(t, 10.0, explanation[0].Impact)
	assert.Equal(t, "Income verification data available for 6 months", explanation[0].Description)
}

func TestCompose_ExplanationFactors(t *testing.T) {
	loans := []models.Loan{
		{LoanAmount: 20000, Status: consts.LoanClosed},
		{LoanAmount: 30000, Status: consts.LoanNPA},
	}
	repayments := []models.Repayment{
		{Status: consts.RepaymentPaid, LateDays: 0},
		{Status: consts.RepaymentPaid, LateDays: 0},
		{Status: consts.RepaymentPaid, LateDays: 0},
		{Status: consts.RepaymentMissed, LateDays: 30},
	}
	bill := 400.0
	records := []models.ConsumptionRecord{
		{DataType: consts.DataTypeElectricity, Metrics: models.ConsumptionMetrics{ElectricityBill: &bill}},
	}

	repayment := CalculateRepaymentScore(loans, repayments)
	income := CalculateIncomeScore(records)
	_, _, explanation := Compose(repayment, income)

	byFactor := map[string]models.ExplanationFactor{}
	for _, factor := range explanation {
		byFactor[factor.Factor] = factor
	}

	onTime, ok := byFactor["On-time Payment Ratio"]
	require.True(t, ok)
	// round(0.75*40 - 20)
	assert.Equal(t, 10.0, onTime.Impact)
	assert.Equal(t, "3/4 payments made on time", onTime.Description)

	npa, ok := byFactor["NPA History"]
	require.True(t, ok)
	assert.Equal(t, -25.0, npa.Impact)

	repeat, ok := byFactor["Repeat Borrower"]
	require.True(t, ok)
	assert.Equal(t, 10.0, repeat.Impact)
	assert.Equal(t, "Has taken 2 loans previously", repeat.Description)

	incomeLevel, ok := byFactor["Estimated Income Level"]
	require.True(t, ok)
	assert.Equal(t, 20.0, incomeLevel.Impact)

	availability, ok := byFactor["Data Availability"]
	require.True(t, ok)
	// one month of data: min(0.08*20, 10)
	assert.InDelta(t, 1.6, availability.Impact, 0.01)
	assert.Equal(t, "Income verification data available for 1 months", availability.Description)
}
