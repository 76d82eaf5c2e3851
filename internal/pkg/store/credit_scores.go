package store

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/services/interfaces"
	storeModels "gramsetu/credit_lending/internal/pkg/store/models"
)

type CreditScoreRepository struct {
	repo        *MongoRepository[models.CreditScore]
	redisClient interfaces.RedisStoreOperations
	keyBuilder  *storeModels.RedisKeyBuilder
}

func NewCreditScoreRepository(redisClient interfaces.RedisStoreOperations) *CreditScoreRepository {
	collection := db.MDB.Database.Collection(consts.CreditScoresCollection)
	return &CreditScoreRepository{
		repo:        NewMongoRepository[models.CreditScore](collection),
		redisClient: redisClient,
		keyBuilder:  storeModels.NewRedisKeyBuilder(),
	}
}

// InsertScore persists the score and caches the summary until the score
// expires. Cache failures are logged, not propagated.
func (r *CreditScoreRepository) InsertScore(ctx context.Context, score models.CreditScore) error {
	_, err := r.repo.Create(score)
	if err != nil {
		logger.Error(ctx, "creditscore : Error while inserting %v", err.Error())
		return err
	}

	r.cacheScore(ctx, score)
	return nil
}

func (r *CreditScoreRepository) cacheScore(ctx context.Context, score models.CreditScore) {
	if r.redisClient == nil {
		return
	}

	ttl := time.Until(score.ValidUntil)
	if ttl <= 0 {
		return
	}

	cached := storeModels.CachedScore{
		ScoreID:        score.ScoreID,
		BeneficiaryID:  score.BeneficiaryID,
		CompositeScore: score.CompositeScore,
		RiskBand:       score.RiskBand,
		RepaymentScore: score.RepaymentScore,
		IncomeScore:    score.IncomeScore,
		CalculatedAt:   score.CalculatedAt,
		ValidUntil:     score.ValidUntil,
	}
	data, err := json.Marshal(cached)
	if err != nil {
		logger.Error(ctx, "creditscore : Error marshaling cache entry %v", err.Error())
		return
	}

	key := r.keyBuilder.ScoreKey(score.BeneficiaryID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		logger.Error(ctx, "creditscore : Error caching score %v", err.Error())
		return
	}
	logger.Info(ctx, "Cached credit score with key %s", key)
}

// CachedLatestScore returns the cached summary for a beneficiary, or
// nil on a cache miss.
func (r *CreditScoreRepository) CachedLatestScore(ctx context.Context, beneficiaryID string) (*storeModels.CachedScore, error) {
	if r.redisClient == nil {
		return nil, nil
	}

	raw, err := r.redisClient.Get(ctx, r.keyBuilder.ScoreKey(beneficiaryID))
	if err != nil {
		return nil, err
	}
	data, ok := raw.([]byte)
	if !ok {
		return nil, nil
	}

	var cached storeModels.CachedScore
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// LatestByBeneficiaryID returns the most recent score by calculatedAt.
func (r *CreditScoreRepository) LatestByBeneficiaryID(ctx context.Context, beneficiaryID string) (*models.CreditScore, error) {
	filter := bson.M{"beneficiaryId": beneficiaryID}
	sort := bson.D{{Key: "calculatedAt", Value: -1}}

	result, err := r.repo.ReadSorted(filter, sort)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorNoCreditScore
		}
		logger.Error(ctx, "creditscore : Error while reading latest %v", err.Error())
		return nil, err
	}
	return &result, nil
}

func (r *CreditScoreRepository) ScoresByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.CreditScore, error) {
	filter := bson.M{"beneficiaryId": beneficiaryID}
	scores, err := r.repo.FindPaged(filter, bson.D{{Key: "calculatedAt", Value: -1}}, 0, 0)
	if err != nil {
		logger.Error(ctx, "creditscore : Error while fetching history %v", err.Error())
		return nil, err
	}
	return scores, nil
}

// ScoresFiltered lists scores by optional risk band and composite score
// range, newest first.
func (r *CreditScoreRepository) ScoresFiltered(ctx context.Context, riskBand string, minScore, maxScore *int, limit int64) ([]models.CreditScore, error) {
	filter := bson.M{}
	if riskBand != "" {
		filter["riskBand"] = riskBand
	}
	scoreRange := bson.M{}
	if minScore != nil {
		scoreRange["$gte"] = *minScore
	}
	if maxScore != nil {
		scoreRange["$lte"] = *maxScore
	}
	if len(scoreRange) > 0 {
		filter["compositeScore"] = scoreRange
	}

	scores, err := r.repo.FindPaged(filter, bson.D{{Key: "calculatedAt", Value: -1}}, limit, 0)
	if err != nil {
		logger.Error(ctx, "creditscore : Error while listing %v", err.Error())
		return nil, err
	}
	return scores, nil
}

func (r *CreditScoreRepository) AllScores(ctx context.Context) ([]models.CreditScore, error) {
	scores, err := r.repo.FindAll(bson.M{})
	if err != nil {
		logger.Error(ctx, "creditscore : Error while fetching all %v", err.Error())
		return nil, err
	}
	return scores, nil
}
