package lending

import (
	"fmt"
	"math"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

const (
	shortTenureAmountCeiling = 50000
	midTenureAmountCeiling   = 100000

	shortTenureMonths = 24
	midTenureMonths   = 36
	longTenureMonths  = 48

	rateLowRiskHighNeed  = 4.0
	rateLowRiskLowNeed   = 6.0
	rateHighRiskHighNeed = 8.0
)

// Decision is the outcome of the auto-approval evaluation. Terms are
// populated only when Status is auto_approved.
type Decision struct {
	Eligible        bool
	Status          string
	ApprovedAmount  *float64
	ApprovedTenure  *int
	InterestRate    *float64
	Conditions      []string
	RejectionReason *string
}

// DetermineAutoApproval evaluates an application against a valid credit
// score. Gates are checked in order: score threshold, amount limit,
// purpose whitelist, then the High Risk-Low Need rejection. The first
// failing gate decides the outcome.
func DetermineAutoApproval(score *models.CreditScore, requestedAmount float64, purpose string, policy configs.LendingPolicy) Decision {
	decision := Decision{
		Status:     consts.StatusManualReview,
		Conditions: []string{},
	}

	if score.CompositeScore < policy.MinScoreForAutoApproval {
		decision.Conditions = append(decision.Conditions, "Credit score below auto-approval threshold")
		return decision
	}

	if requestedAmount > policy.MaxAutoApprovalAmount {
		decision.Conditions = append(decision.Conditions, "Amount exceeds auto-approval limit")
		return decision
	}

	if !purposeAllowed(purpose, policy.AllowedPurposes) {
		decision.Conditions = append(decision.Conditions, "Purpose requires manual review")
		return decision
	}

	if score.RiskBand == consts.RiskBandHighRiskLowNeed {
		decision.Status = consts.StatusRejected
		reason := "High risk profile with low need assessment"
		decision.RejectionReason = &reason
		return decision
	}

	decision.Eligible = true
	decision.Status = consts.StatusAutoApproved

	maxAmountByScore := math.Floor(float64(score.CompositeScore) * policy.AmountPerScorePoint)
	approvedAmount := math.Min(requestedAmount, maxAmountByScore)
	decision.ApprovedAmount = &approvedAmount

	tenure := longTenureMonths
	if approvedAmount <= shortTenureAmountCeiling {
		tenure = shortTenureMonths
	} else if approvedAmount <= midTenureAmountCeiling {
		tenure = midTenureMonths
	}
	decision.ApprovedTenure = &tenure

	var rate float64
	switch score.RiskBand {
	case consts.RiskBandLowRiskHighNeed:
		rate = rateLowRiskHighNeed
	case consts.RiskBandLowRiskLowNeed:
		rate = rateLowRiskLowNeed
	case consts.RiskBandHighRiskHighNeed:
		rate = rateHighRiskHighNeed
	}
	decision.InterestRate = &rate

	if score.CompositeScore < policy.IncomeVerificationBelow {
		decision.Conditions = append(decision.Conditions, "Monthly income verification required")
	}

	if approvedAmount < requestedAmount {
		decision.Conditions = append(decision.Conditions,
			fmt.Sprintf("Amount reduced from ₹%s based on credit assessment", formatAmount(requestedAmount)))
	}

	return decision
}

// StatusMessage is the applicant-facing copy for an approval status.
func StatusMessage(status string, rejectionReason *string) string {
	switch status {
	case consts.StatusAutoApproved:
		return "Congratulations! Your loan has been automatically approved and will be disbursed within 24 hours."
	case consts.StatusManualReview:
		return "Your application is under review. You will be notified within 3-5 business days."
	case consts.StatusRejected:
		reason := ""
		if rejectionReason != nil {
			reason = *rejectionReason
		}
		return fmt.Sprintf("Application rejected: %s", reason)
	default:
		return "Application submitted successfully."
	}
}

func purposeAllowed(purpose string, allowed []string) bool {
	for _, p := range allowed {
		if p == purpose {
			return true
		}
	}
	return false
}

// formatAmount renders an amount with Indian-style comma grouping for
// applicant-facing messages, e.g. 150000 -> "1,50,000".
func formatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", math.Floor(amount))
	if len(whole) <= 3 {
		return whole
	}
	last3 := whole[len(whole)-3:]
	rest := whole[:len(whole)-3]
	grouped := ""
	for len(rest) > 2 {
		grouped = "," + rest[len(rest)-2:] + grouped
		rest = rest[:len(rest)-2]
	}
	return rest + grouped + "," + last3
}
