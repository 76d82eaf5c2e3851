package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type RepaymentRepository struct {
	repo *MongoRepository[models.Repayment]
}

func NewRepaymentRepository() *RepaymentRepository {
	collection := db.MDB.Database.Collection(consts.RepaymentsCollection)
	return &RepaymentRepository{
		repo: NewMongoRepository[models.Repayment](collection),
	}
}

func (r *RepaymentRepository) RepaymentsByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Repayment, error) {
	repayments, err := r.repo.FindAll(bson.M{"beneficiaryId": beneficiaryID})
	if err != nil {
		logger.Error(ctx, "repayments : Error while fetching %v", err.Error())
		return nil, err
	}
	return repayments, nil
}
