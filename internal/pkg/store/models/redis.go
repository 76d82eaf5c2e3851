package models

import (
	"fmt"
	"time"
)

// Key patterns for cached data
const (
	ScoreKeyPattern = "creditscore:%s" // creditscore:beneficiaryId
)

type RedisKeyBuilder struct{}

func NewRedisKeyBuilder() *RedisKeyBuilder {
	return &RedisKeyBuilder{}
}

func (rkb *RedisKeyBuilder) ScoreKey(beneficiaryID string) string {
	return fmt.Sprintf(ScoreKeyPattern, beneficiaryID)
}

// CachedScore is the redis projection of the latest credit score. The
// cache entry expires with the score's validity window.
type CachedScore struct {
	ScoreID        string    `json:"scoreId"`
	BeneficiaryID  string    `json:"beneficiaryId"`
	CompositeScore int       `json:"compositeScore"`
	RiskBand       string    `json:"riskBand"`
	RepaymentScore int       `json:"repaymentScore"`
	IncomeScore    int       `json:"incomeScore"`
	CalculatedAt   time.Time `json:"calculatedAt"`
	ValidUntil     time.Time `json:"validUntil"`
}
