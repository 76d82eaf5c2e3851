package lending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

func scoreWith(composite int, riskBand string) *models.CreditScore {
	return &models.CreditScore{
		CompositeScore: composite,
		RiskBand:       riskBand,
	}
}

func TestDetermineAutoApproval_Gates(t *testing.T) {
	policy := configs.DefaultLendingPolicy()

	tests := []struct {
		name              string
		score             *models.CreditScore
		amount            float64
		purpose           string
		expectedStatus    string
		expectedCondition string
	}{
		{
			name:              "score below threshold",
			score:             scoreWith(69, consts.RiskBandLowRiskHighNeed),
			amount:            50000,
			purpose:           "business",
			expectedStatus:    consts.StatusManualReview,
			expectedCondition: "Credit score below auto-approval threshold",
		},
		{
			name:              "amount above limit",
			score:             scoreWith(85, consts.RiskBandLowRiskHighNeed),
			amount:            200001,
			purpose:           "business",
			expectedStatus:    consts.StatusManualReview,
			expectedCondition: "Amount exceeds auto-approval limit",
		},
		{
			name:              "purpose outside whitelist",
			score:             scoreWith(85, consts.RiskBandLowRiskHighNeed),
			amount:            50000,
			purpose:           "wedding",
			expectedStatus:    consts.StatusManualReview,
			expectedCondition: "Purpose requires manual review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := DetermineAutoApproval(tt.score, tt.amount, tt.purpose, policy)

			assert.False(t, decision.Eligible)
			assert.Equal(t, tt.expectedStatus, decision.Status)
			assert.Contains(t, decision.Conditions, tt.expectedCondition)
			assert.Nil(t, decision.ApprovedAmount)
		})
	}
}

func TestDetermineAutoApproval_GateOrder(t *testing.T) {
	policy := configs.DefaultLendingPolicy()

	// a failing score wins over a failing amount
	decision := DetermineAutoApproval(scoreWith(40, consts.RiskBandHighRiskLowNeed), 500000, "wedding", policy)

	assert.Equal(t, consts.StatusManualReview, decision.Status)
	assert.Equal(t, []string{"Credit score below auto-approval threshold"}, decision.Conditions)
}

func TestDetermineAutoApproval_HighRiskLowNeedRejected(t *testing.T) {
	policy := configs.DefaultLendingPolicy()

	decision := DetermineAutoApproval(scoreWith(75, consts.RiskBandHighRiskLowNeed), 50000, "business", policy)

	assert.False(t, decision.Eligible)
	assert.Equal(t, consts.StatusRejected, decision.Status)
	require.NotNil(t, decision.RejectionReason)
	assert.Equal(t, "High risk profile with low need assessment", *decision.RejectionReason)
}

func TestDetermineAutoApproval_Approved(t *testing.T) {
	policy := configs.DefaultLendingPolicy()

	tests := []struct {
		name           string
		score          *models.CreditScore
		amount         float64
		expectedAmount float64
		expectedTenure int
		expectedRate   float64
	}{
		{
			name:           "short tenure for small amount",
			score:          scoreWith(85, consts.RiskBandLowRiskHighNeed),
			amount:         40000,
			expectedAmount: 40000,
			expectedTenure: 24,
			expectedRate:   4.0,
		},
		{
			name:           "mid tenure at the boundary",
			score:          scoreWith(85, consts.RiskBandLowRiskLowNeed),
			amount:         100000,
			expectedAmount: 100000,
			expectedTenure: 36,
			expectedRate:   6.0,
		},
		{
			name:           "long tenure above boundary",
			score:          scoreWith(85, consts.RiskBandHighRiskHighNeed),
			amount:         150000,
			expectedAmount: 150000,
			expectedTenure: 48,
			expectedRate:   8.0,
		},
		{
			name:   "amount capped by score",
			score:  scoreWith(70, consts.RiskBandLowRiskHighNeed),
			amount: 200000,
			// 70 * 2500
			expectedAmount: 175000,
			expectedTenure: 48,
			expectedRate:   4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := DetermineAutoApproval(tt.score, tt.amount, "business", policy)

			assert.True(t, decision.Eligible)
			assert.Equal(t, consts.StatusAutoApproved, decision.Status)
			require.NotNil(t, decision.ApprovedAmount)
			assert.Equal(t, tt.expectedAmount, *decision.ApprovedAmount)
			require.NotNil(t, decision.ApprovedTenure)
			assert.Equal(t, tt.expectedTenure, *decision.ApprovedTenure)
			require.NotNil(t, decision.InterestRate)
			assert.Equal(t, tt.expectedRate, *decision.InterestRate)
		})
	}
}

func TestDetermineAutoApproval_Conditions(t *testing.T) {
	policy := configs.DefaultLendingPolicy()

	t.Run("income verification below threshold", func(t *testing.T) {
		decision := DetermineAutoApproval(scoreWith(75, consts.RiskBandLowRiskHighNeed), 40000, "education", policy)
		assert.Contains(t, decision.Conditions, "Monthly income verification required")
	})

	t.Run("no conditions for strong score", func(t *testing.T) {
		decision := DetermineAutoApproval(scoreWith(85, consts.RiskBandLowRiskHighNeed), 40000, "education", policy)
		assert.Empty(t, decision.Conditions)
	})

	t.Run("reduction condition with indian grouping", func(t *testing.T) {
		decision := DetermineAutoApproval(scoreWith(70, consts.RiskBandLowRiskHighNeed), 200000, "business", policy)
		assert.Contains(t, decision.Conditions, "Monthly income verification required")
		assert.Contains(t, decision.Conditions, "Amount reduced from ₹2,00,000 based on credit assessment")
	})
}

func TestStatusMessage(t *testing.T) {
	reason := "High risk profile with low need assessment"

	assert.Equal(t,
		"Congratulations! Your loan has been automatically approved and will be disbursed within 24 hours.",
		StatusMessage(consts.StatusAutoApproved, nil))
	assert.Equal(t,
		"Your application is under review. You will be notified within 3-5 business days.",
		StatusMessage(consts.StatusManualReview, nil))
	assert.Equal(t,
		"Application rejected: High risk profile with low need assessment",
		StatusMessage(consts.StatusRejected, &reason))
	assert.Equal(t,
		"Application submitted successfully.",
		StatusMessage("pending", nil))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{500, "500"},
		{1500, "1,500"},
		{50000, "50,000"},
		{150000, "1,50,000"},
		{2000000, "20,00,000"},
		{12345678, "1,23,45,678"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatAmount(tt.amount))
	}
}
