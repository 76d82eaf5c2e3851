package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type BeneficiaryRepository struct {
	repo *MongoRepository[models.Beneficiary]
}

func NewBeneficiaryRepository() *BeneficiaryRepository {
	collection := db.MDB.Database.Collection(consts.BeneficiariesCollection)
	return &BeneficiaryRepository{
		repo: NewMongoRepository[models.Beneficiary](collection),
	}
}

func (r *BeneficiaryRepository) InsertBeneficiary(ctx context.Context, beneficiary models.Beneficiary) error {
	_, err := r.repo.Create(beneficiary)
	if err != nil {
		logger.Error(ctx, "beneficiary : Error while inserting %v", err.Error())
		return err
	}
	return nil
}

func (r *BeneficiaryRepository) BeneficiaryByID(ctx context.Context, beneficiaryID string) (*models.Beneficiary, error) {
	filter := bson.M{"beneficiaryId": beneficiaryID}
	result, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorBeneficiaryNotFound
		}
		logger.Error(ctx, "beneficiary : Error while reading %v", err.Error())
		return nil, err
	}
	return &result, nil
}

func (r *BeneficiaryRepository) BeneficiaryExists(ctx context.Context, beneficiaryID string) (bool, error) {
	count, err := r.repo.CountDocuments(bson.M{"beneficiaryId": beneficiaryID})
	if err != nil {
		logger.Error(ctx, "beneficiary : Error while counting %v", err.Error())
		return false, err
	}
	return count > 0, nil
}

func (r *BeneficiaryRepository) UpdateStatus(ctx context.Context, beneficiaryID string, status string) error {
	filter := bson.M{"beneficiaryId": beneficiaryID}
	update := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if err := r.repo.Update(filter, update); err != nil {
		logger.Error(ctx, "beneficiary : Error while updating status %v", err.Error())
		return err
	}
	return nil
}
