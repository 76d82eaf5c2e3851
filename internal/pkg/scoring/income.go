package scoring

import (
	"math"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

// IncomeResult is the income sub-score with the proxy indicators that
// produced it. NeedLevel feeds the risk band classification.
type IncomeResult struct {
	Score      int
	NeedLevel  string
	Indicators models.IncomeIndicators
}

const (
	// Household electricity spend is typically 3-5% of income, mobile
	// spend 1-2%. The multipliers below are conservative inversions.
	electricityIncomeMultiplier = 25
	mobileIncomeMultiplier      = 60

	highConsumptionBillThreshold   = 2000
	highConsumptionMobileThreshold = 500
	midConsumptionBillThreshold    = 800
	midConsumptionMobileThreshold  = 200

	veryLowIncomeCeiling = 15000
	lowIncomeCeiling     = 25000
	highIncomeFloor      = 50000

	stabilityBonusWeight = 20
	dataBonusPerRecord   = 2
	dataBonusCap         = 10
)

// CalculateIncomeScore estimates income from consumption proxies and
// scores lending need on a 0-100 scale where lower estimated income
// scores higher, reflecting concessional-lending priority.
func CalculateIncomeScore(records []models.ConsumptionRecord) IncomeResult {
	if len(records) == 0 {
		return IncomeResult{
			Score:     newBorrowerIncome,
			NeedLevel: consts.NeedHigh,
			Indicators: models.IncomeIndicators{
				EstimatedMonthlyIncome: nil,
				IncomeStability:        defaultStability,
				ConsumptionPattern:     consts.PatternUnknown,
			},
		}
	}

	electricityCount := 0
	electricityBillSum := 0.0
	mobileCount := 0
	mobileSpendSum := 0.0

	for _, rec := range records {
		switch rec.DataType {
		case consts.DataTypeElectricity:
			electricityCount++
			if rec.Metrics.ElectricityBill != nil {
				electricityBillSum += *rec.Metrics.ElectricityBill
			}
		case consts.DataTypeMobile:
			mobileCount++
			for _, recharge := range rec.Metrics.MobileRecharges {
				mobileSpendSum += recharge.Amount
			}
		}
	}

	avgElectricityBill := 0.0
	if electricityCount > 0 {
		avgElectricityBill = electricityBillSum / float64(electricityCount)
	}
	avgMonthlyMobile := 0.0
	if mobileCount > 0 {
		avgMonthlyMobile = mobileSpendSum / float64(mobileCount)
	}

	estimatedIncome := 0.0
	if avgElectricityBill > 0 {
		estimatedIncome = math.Max(estimatedIncome, avgElectricityBill*electricityIncomeMultiplier)
	}
	if avgMonthlyMobile > 0 {
		estimatedIncome = math.Max(estimatedIncome, avgMonthlyMobile*mobileIncomeMultiplier)
	}

	pattern := consts.PatternLow
	needLevel := consts.NeedHigh
	if avgElectricityBill > highConsumptionBillThreshold || avgMonthlyMobile > highConsumptionMobileThreshold {
		pattern = consts.PatternHigh
		needLevel = consts.NeedLow
	} else if avgElectricityBill > midConsumptionBillThreshold || avgMonthlyMobile > midConsumptionMobileThreshold {
		pattern = consts.PatternMedium
		needLevel = consts.NeedMedium
	}

	stability := math.Min(float64(len(records))/stabilityFullMonths, 1)

	score := float64(neutralScore)
	if estimatedIncome > 0 {
		switch {
		case estimatedIncome < veryLowIncomeCeiling:
			score += 20
		case estimatedIncome < lowIncomeCeiling:
			score += 10
		case estimatedIncome > highIncomeFloor:
			score -= 20
		}
	}

	score += stability * stabilityBonusWeight
	score += math.Min(float64(len(records)*dataBonusPerRecord), dataBonusCap)

	indicators := models.IncomeIndicators{
		IncomeStability:    math.Round(stability*100) / 100,
		ConsumptionPattern: pattern,
	}
	if estimatedIncome > 0 {
		rounded := math.Round(estimatedIncome)
		indicators.EstimatedMonthlyIncome = &rounded
	}

	return IncomeResult{
		Score:      clampScore(score),
		NeedLevel:  needLevel,
		Indicators: indicators,
	}
}
