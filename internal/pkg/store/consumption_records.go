package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type ConsumptionRecordRepository struct {
	repo *MongoRepository[models.ConsumptionRecord]
}

func NewConsumptionRecordRepository() *ConsumptionRecordRepository {
	collection := db.MDB.Database.Collection(consts.ConsumptionRecordsCollection)
	return &ConsumptionRecordRepository{
		repo: NewMongoRepository[models.ConsumptionRecord](collection),
	}
}

// BuildDataID derives the natural identifier of a consumption record.
func BuildDataID(beneficiaryID, dataType, monthYear string) string {
	return fmt.Sprintf("DATA_%s_%s_%s", beneficiaryID, dataType, monthYear)
}

// UpsertRecord writes one record per (beneficiaryId, dataType, monthYear).
// Re-uploads replace the metrics and reset verification to pending.
func (r *ConsumptionRecordRepository) UpsertRecord(ctx context.Context, record models.ConsumptionRecord) (string, error) {
	filter := bson.M{
		"beneficiaryId": record.BeneficiaryID,
		"dataType":      record.DataType,
		"monthYear":     record.MonthYear,
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"metrics":            record.Metrics,
			"dataSource":         record.DataSource,
			"uploadedBy":         record.UploadedBy,
			"verificationStatus": consts.VerificationPending,
			"updatedAt":          now,
		},
		"$setOnInsert": bson.M{
			"dataId":        record.DataID,
			"beneficiaryId": record.BeneficiaryID,
			"dataType":      record.DataType,
			"monthYear":     record.MonthYear,
			"createdAt":     now,
		},
	}

	if err := r.repo.Upsert(filter, update); err != nil {
		logger.Error(ctx, "consumption : Error while upserting %v", err.Error())
		return "", err
	}
	return record.DataID, nil
}

func (r *ConsumptionRecordRepository) RecordByDataID(ctx context.Context, dataID string) (*models.ConsumptionRecord, error) {
	result, err := r.repo.Read(bson.M{"dataId": dataID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorConsumptionRecordNotFound
		}
		logger.Error(ctx, "consumption : Error while reading %v", err.Error())
		return nil, err
	}
	return &result, nil
}

// RecordsByBeneficiary returns a beneficiary's records, newest period
// first, optionally filtered by data type.
func (r *ConsumptionRecordRepository) RecordsByBeneficiary(ctx context.Context, beneficiaryID string, dataType string, limit int64) ([]models.ConsumptionRecord, error) {
	filter := bson.M{"beneficiaryId": beneficiaryID}
	if dataType != "" {
		filter["dataType"] = dataType
	}

	records, err := r.repo.FindPaged(filter, bson.D{{Key: "monthYear", Value: -1}}, limit, 0)
	if err != nil {
		logger.Error(ctx, "consumption : Error while fetching %v", err.Error())
		return nil, err
	}
	return records, nil
}

func (r *ConsumptionRecordRepository) UpdateVerification(ctx context.Context, dataID string, status string, verifiedBy string) error {
	filter := bson.M{"dataId": dataID}
	update := bson.M{
		"verificationStatus": status,
		"updatedAt":          time.Now().UTC(),
	}
	if verifiedBy != "" {
		update["verifiedBy"] = verifiedBy
	}
	if err := r.repo.Update(filter, update); err != nil {
		logger.Error(ctx, "consumption : Error while updating verification %v", err.Error())
		return err
	}
	return nil
}
