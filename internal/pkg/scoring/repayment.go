package scoring

import (
	"math"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

// RepaymentResult is the repayment sub-score with its component breakdown.
type RepaymentResult struct {
	Score       int
	Components  models.RepaymentComponents
	Utilization models.LoanUtilization
}

const (
	neutralScore        = 50
	onTimeGraceDays     = 3
	onTimeRatioWeight   = 80
	npaPenaltyPerLoan   = 15
	npaPenaltyCap       = 30
	delayPenaltyCap     = 20
	repeatBonusPerLoan  = 2
	repeatBonusCap      = 10
	newBorrowerIncome   = 40
	defaultStability    = 0.5
	stabilityFullMonths = 12
)

// CalculateRepaymentScore derives the 0-100 repayment sub-score from a
// beneficiary's loans and repayments. Zero loans yields the neutral
// new-borrower default so absence of history is not penalized.
func CalculateRepaymentScore(loans []models.Loan, repayments []models.Repayment) RepaymentResult {
	if len(loans) == 0 {
		return RepaymentResult{
			Score: neutralScore,
			Components: models.RepaymentComponents{
				OnTimePayments: 0,
				TotalPayments:  0,
				AverageDelay:   0,
				NpaHistory:     false,
			},
			Utilization: models.LoanUtilization{
				TotalLoansCount: 0,
				TotalLoanAmount: 0,
				RepeatBorrower:  false,
			},
		}
	}

	totalPayments := len(repayments)
	onTimePayments := 0
	npaLoans := 0
	delayedCount := 0
	delayedSum := 0

	for _, r := range repayments {
		if r.Status == consts.RepaymentPaid && r.LateDays <= onTimeGraceDays {
			onTimePayments++
		}
		if r.LateDays > 0 {
			delayedCount++
			delayedSum += r.LateDays
		}
	}

	totalLoanAmount := 0.0
	for _, l := range loans {
		totalLoanAmount += l.LoanAmount
		if l.Status == consts.LoanNPA {
			npaLoans++
		}
	}

	averageDelay := 0.0
	if delayedCount > 0 {
		averageDelay = float64(delayedSum) / float64(delayedCount)
	}

	score := float64(neutralScore)

	if totalPayments > 0 {
		onTimeRatio := float64(onTimePayments) / float64(totalPayments)
		score += (onTimeRatio - 0.5) * onTimeRatioWeight
	}

	if npaLoans > 0 {
		score -= math.Min(float64(npaLoans*npaPenaltyPerLoan), npaPenaltyCap)
	}

	if averageDelay > 0 {
		score -= math.Min(averageDelay/2, delayPenaltyCap)
	}

	if len(loans) > 1 {
		score += math.Min(float64(len(loans)*repeatBonusPerLoan), repeatBonusCap)
	}

	return RepaymentResult{
		Score: clampScore(score),
		Components: models.RepaymentComponents{
			OnTimePayments: onTimePayments,
			TotalPayments:  totalPayments,
			AverageDelay:   math.Round(averageDelay*10) / 10,
			NpaHistory:     npaLoans > 0,
		},
		Utilization: models.LoanUtilization{
			TotalLoansCount: len(loans),
			TotalLoanAmount: totalLoanAmount,
			RepeatBorrower:  len(loans) > 1,
		},
	}
}

func clampScore(score float64) int {
	return int(math.Max(0, math.Min(100, math.Round(score))))
}
