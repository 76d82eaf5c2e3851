package scoring

import (
	"fmt"
	"math"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

const (
	repaymentWeight = 0.6
	incomeWeight    = 0.4

	lowRiskRepaymentFloor = 70
	highNeedIncomeFloor   = 60
)

// Compose combines the repayment and income sub-scores into the
// composite score, the risk band, and the explanation trail.
func Compose(repayment RepaymentResult, income IncomeResult) (int, string, []models.ExplanationFactor) {
	composite := int(math.Round(float64(repayment.Score)*repaymentWeight + float64(income.Score)*incomeWeight))
	band := DetermineRiskBand(repayment.Score, income.Score, income.NeedLevel)
	explanation := buildExplanation(repayment, income)
	return composite, band, explanation
}

// DetermineRiskBand classifies on two axes: repayment reliability
// (risk) and estimated lending need.
func DetermineRiskBand(repaymentScore, incomeScore int, needLevel string) string {
	lowRisk := repaymentScore >= lowRiskRepaymentFloor
	highNeed := needLevel == consts.NeedHigh || incomeScore >= highNeedIncomeFloor

	switch {
	case lowRisk && highNeed:
		return consts.RiskBandLowRiskHighNeed
	case lowRisk:
		return consts.RiskBandLowRiskLowNeed
	case highNeed:
		return consts.RiskBandHighRiskHighNeed
	default:
		return consts.RiskBandHighRiskLowNeed
	}
}

// buildExplanation produces the advisory factor trail. Impacts are
// indicative magnitudes for field officers, not a score reconciliation.
func buildExplanation(repayment RepaymentResult, income IncomeResult) []models.ExplanationFactor {
	factors := make([]models.ExplanationFactor, 0, 5)

	if repayment.Components.OnTimePayments > 0 {
		ratio := float64(repayment.Components.OnTimePayments) / float64(repayment.Components.TotalPayments)
		factors = append(factors, models.ExplanationFactor{
			Factor:      "On-time Payment Ratio",
			Impact:      math.Round(ratio*40 - 20),
			Description: fmt.Sprintf("%d/%d payments made on time", repayment.Components.OnTimePayments, repayment.Components.TotalPayments),
		})
	}

	if repayment.Components.NpaHistory {
		factors = append(factors, models.ExplanationFactor{
			Factor:      "NPA History",
			Impact:      -25,
			Description: "Previous loan(s) classified as Non-Performing Asset",
		})
	}

	if repayment.Utilization.RepeatBorrower {
		factors = append(factors, models.ExplanationFactor{
			Factor:      "Repeat Borrower",
			Impact:      10,
			Description: fmt.Sprintf("Has taken %d loans previously", repayment.Utilization.TotalLoansCount),
		})
	}

	if income.Indicators.EstimatedMonthlyIncome != nil {
		estimated := *income.Indicators.EstimatedMonthlyIncome
		var impact float64
		var description string
		switch {
		case estimated < veryLowIncomeCeiling:
			impact = 20
			description = "Very low estimated income indicates high need for concessional lending"
		case estimated < lowIncomeCeiling:
			impact = 10
			description = "Low estimated income indicates need for concessional lending"
		case estimated > highIncomeFloor:
			impact = -20
			description = "High estimated income indicates lower need for concessional lending"
		}
		if impact != 0 {
			factors = append(factors, models.ExplanationFactor{
				Factor:      "Estimated Income Level",
				Impact:      impact,
				Description: description,
			})
		}
	}

	factors = append(factors, models.ExplanationFactor{
		Factor:      "Data Availability",
		Impact:      math.Min(income.Indicators.IncomeStability*20, 10),
		Description: fmt.Sprintf("Income verification data available for %d months", int(math.Round(income.Indicators.IncomeStability*12))),
	})

	return factors
}
