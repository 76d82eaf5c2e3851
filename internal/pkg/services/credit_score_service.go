package services

import (
	"context"
	"fmt"
	"time"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/scoring"
)

type CreditScoreService struct {
	beneficiaryRepo BeneficiaryRepo
	loanRepo        LoanRepo
	repaymentRepo   RepaymentRepo
	consumptionRepo ConsumptionRepo
	scoreRepo       CreditScoreRepo
}

func NewCreditScoreService(beneficiaryRepo BeneficiaryRepo, loanRepo LoanRepo, repaymentRepo RepaymentRepo, consumptionRepo ConsumptionRepo, scoreRepo CreditScoreRepo) *CreditScoreService {
	return &CreditScoreService{
		beneficiaryRepo: beneficiaryRepo,
		loanRepo:        loanRepo,
		repaymentRepo:   repaymentRepo,
		consumptionRepo: consumptionRepo,
		scoreRepo:       scoreRepo,
	}
}

// CalculateScore recomputes a beneficiary's credit score from the full
// loan, repayment, and consumption history, persists it, and returns
// the summary. Each call appends a new score document.
func (s *CreditScoreService) CalculateScore(ctx context.Context, beneficiaryID string) (*models.ScoreSummary, error) {
	if _, err := s.beneficiaryRepo.BeneficiaryByID(ctx, beneficiaryID); err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.LoansByBeneficiaryID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	repayments, err := s.repaymentRepo.RepaymentsByBeneficiaryID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	records, err := s.consumptionRepo.RecordsByBeneficiary(ctx, beneficiaryID, "", 0)
	if err != nil {
		return nil, err
	}

	repayment := scoring.CalculateRepaymentScore(loans, repayments)
	income := scoring.CalculateIncomeScore(records)
	composite, riskBand, explanation := scoring.Compose(repayment, income)

	now := time.Now().UTC()
	score := models.CreditScore{
		ScoreID:        fmt.Sprintf("SCORE_%s_%d", beneficiaryID, now.UnixMilli()),
		BeneficiaryID:  beneficiaryID,
		ScoreVersion:   consts.ScoreVersion,
		RepaymentScore: repayment.Score,
		IncomeScore:    income.Score,
		CompositeScore: composite,
		RiskBand:       riskBand,
		ScoreComponents: models.ScoreComponents{
			RepaymentHistory: repayment.Components,
			LoanUtilization:  repayment.Utilization,
			IncomeIndicators: income.Indicators,
		},
		ModelExplanation: explanation,
		CalculatedAt:     now,
		ValidUntil:       now.AddDate(0, 0, configs.SCORE_VALIDITY_DAYS),
		CreatedAt:        now,
	}

	if err := s.scoreRepo.InsertScore(ctx, score); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Calculated credit score %s for beneficiary %s: composite=%d band=%s", score.ScoreID, beneficiaryID, composite, riskBand)

	return &models.ScoreSummary{
		ScoreID:        score.ScoreID,
		CompositeScore: composite,
		RiskBand:       riskBand,
		RepaymentScore: repayment.Score,
		IncomeScore:    income.Score,
	}, nil
}

// LatestScore serves the most recent score, preferring the redis cache
// and falling back to the database on a miss.
func (s *CreditScoreService) LatestScore(ctx context.Context, beneficiaryID string) (*models.CreditScore, error) {
	if cached, err := s.scoreRepo.CachedLatestScore(ctx, beneficiaryID); err == nil && cached != nil {
		logger.Debug(ctx, "Credit score cache hit for beneficiary %s", beneficiaryID)
		return &models.CreditScore{
			ScoreID:        cached.ScoreID,
			BeneficiaryID:  cached.BeneficiaryID,
			CompositeScore: cached.CompositeScore,
			RiskBand:       cached.RiskBand,
			RepaymentScore: cached.RepaymentScore,
			IncomeScore:    cached.IncomeScore,
			CalculatedAt:   cached.CalculatedAt,
			ValidUntil:     cached.ValidUntil,
		}, nil
	}

	return s.scoreRepo.LatestByBeneficiaryID(ctx, beneficiaryID)
}

func (s *CreditScoreService) ScoreHistory(ctx context.Context, beneficiaryID string) ([]models.CreditScore, error) {
	if _, err := s.beneficiaryRepo.BeneficiaryByID(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	return s.scoreRepo.ScoresByBeneficiaryID(ctx, beneficiaryID)
}

func (s *CreditScoreService) ListScores(ctx context.Context, riskBand string, minScore, maxScore *int, limit int64) ([]models.CreditScore, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.scoreRepo.ScoresFiltered(ctx, riskBand, minScore, maxScore, limit)
}

// ScoreAnalytics aggregates portfolio-level score statistics.
func (s *CreditScoreService) ScoreAnalytics(ctx context.Context) (*models.ScoreAnalytics, error) {
	scores, err := s.scoreRepo.AllScores(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &models.ScoreAnalytics{
		RiskBandDistribution: map[string]int{},
		ScoreDistribution: map[string]int{
			"0-20":   0,
			"21-40":  0,
			"41-60":  0,
			"61-80":  0,
			"81-100": 0,
		},
		MonthlyTrends: map[string]int{},
	}
	analytics.TotalScores = len(scores)
	if len(scores) == 0 {
		return analytics, nil
	}

	sum := 0
	for _, score := range scores {
		sum += score.CompositeScore
		analytics.RiskBandDistribution[score.RiskBand]++

		switch {
		case score.CompositeScore <= 20:
			analytics.ScoreDistribution["0-20"]++
		case score.CompositeScore <= 40:
			analytics.ScoreDistribution["21-40"]++
		case score.CompositeScore <= 60:
			analytics.ScoreDistribution["41-60"]++
		case score.CompositeScore <= 80:
			analytics.ScoreDistribution["61-80"]++
		default:
			analytics.ScoreDistribution["81-100"]++
		}

		month := score.CalculatedAt.UTC().Format("2006-01")
		analytics.MonthlyTrends[month]++
	}
	analytics.AverageScore = int(float64(sum)/float64(len(scores)) + 0.5)

	return analytics, nil
}
