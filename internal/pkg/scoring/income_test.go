package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

func electricityRecord(bill float64) models.ConsumptionRecord {
	return models.ConsumptionRecord{
		DataType: consts.DataTypeElectricity,
		Metrics:  models.ConsumptionMetrics{ElectricityBill: &bill},
	}
}

func mobileRecord(rechargeAmounts ...float64) models.ConsumptionRecord {
	recharges := make([]models.MobileRecharge, 0, len(rechargeAmounts))
	for _, amount := range rechargeAmounts {
		recharges = append(recharges, models.MobileRecharge{Amount: amount})
	}
	return models.ConsumptionRecord{
		DataType: consts.DataTypeMobile,
		Metrics:  models.ConsumptionMetrics{MobileRecharges: recharges},
	}
}

func TestCalculateIncomeScore_NoData(t *testing.T) {
	result := CalculateIncomeScore(nil)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, consts.NeedHigh, result.NeedLevel)
	assert.Equal(t, consts.PatternUnknown, result.Indicators.ConsumptionPattern)
	assert.Equal(t, 0.5, result.Indicators.IncomeStability)
	assert.Nil(t, result.Indicators.EstimatedMonthlyIncome)
}

func TestCalculateIncomeScore(t *testing.T) {
	tests := []struct {
		name            string
		records         []models.ConsumptionRecord
		expectedScore   int
		expectedNeed    string
		expectedPattern string
		expectedIncome  float64
	}{
		{
			name:    "very low income from electricity",
			records: []models.ConsumptionRecord{electricityRecord(400)},
			// 50 + 20 + (1/12)*20 + 2 rounds to 74
			expectedScore:   74,
			expectedNeed:    consts.NeedHigh,
			expectedPattern: consts.PatternLow,
			expectedIncome:  10000,
		},
		{
			name:    "high consumption lowers need",
			records: []models.ConsumptionRecord{electricityRecord(3000)},
			// 50 - 20 + (1/12)*20 + 2 rounds to 34
			expectedScore:   34,
			expectedNeed:    consts.NeedLow,
			expectedPattern: consts.PatternHigh,
			expectedIncome:  75000,
		},
		{
			name:    "medium consumption band",
			records: []models.ConsumptionRecord{electricityRecord(1000)},
			// estimated 25000 sits outside both bonus bands
			expectedScore:   54,
			expectedNeed:    consts.NeedMedium,
			expectedPattern: consts.PatternMedium,
			expectedIncome:  25000,
		},
		{
			name:    "mobile recharges drive the estimate",
			records: []models.ConsumptionRecord{mobileRecord(100, 100, 100)},
			// estimated 18000 earns the low-income bonus
			expectedScore:   64,
			expectedNeed:    consts.NeedMedium,
			expectedPattern: consts.PatternMedium,
			expectedIncome:  18000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateIncomeScore(tt.records)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedNeed, result.NeedLevel)
			assert.Equal(t, tt.expectedPattern, result.Indicators.ConsumptionPattern)
			require.NotNil(t, result.Indicators.EstimatedMonthlyIncome)
			assert.Equal(t, tt.expectedIncome, *result.Indicators.EstimatedMonthlyIncome)
		})
	}
}

func TestCalculateIncomeScore_StabilityAndDataBonusCaps(t *testing.T) {
	records := make([]models.ConsumptionRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, electricityRecord(400))
	}

	result := CalculateIncomeScore(records)

	// 50 + 20 + 20 (full stability) + 10 (data bonus cap)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 1.0, result.Indicators.IncomeStability)
}

func TestCalculateIncomeScore_StabilityRounding(t *testing.T) {
	records := []models.ConsumptionRecord{
		electricityRecord(400),
		electricityRecord(500),
	}

	result := CalculateIncomeScore(records)

	// 2/12 months rounds to two decimals
	assert.Equal(t, 0.17, result.Indicators.IncomeStability)
}
