package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/logger"
)

// EnsureIndexes creates the indexes the service depends on. The unique
// index on consumption records backs the one-record-per-month upsert;
// the rest serve the hot lookup paths.
func EnsureIndexes() {
	if MDB == nil || MDB.Database == nil {
		logger.Info("Skipping index setup: MongoDB is not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ensure(ctx, consts.ConsumptionRecordsCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "beneficiaryId", Value: 1},
			{Key: "dataType", Value: 1},
			{Key: "monthYear", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_beneficiary_datatype_monthyear"),
	})

	ensure(ctx, consts.CreditScoresCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "beneficiaryId", Value: 1},
			{Key: "calculatedAt", Value: -1},
		},
		Options: options.Index().SetName("beneficiary_calculated_desc"),
	})

	ensure(ctx, consts.LendingApplicationsCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "applicationId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_application_id"),
	})

	ensure(ctx, consts.LendingApplicationsCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "beneficiaryId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("beneficiary_created_desc"),
	})

	ensure(ctx, consts.BeneficiariesCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "beneficiaryId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_beneficiary_id"),
	})

	ensure(ctx, consts.LoansCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "beneficiaryId", Value: 1}},
		Options: options.Index().SetName("loans_by_beneficiary"),
	})

	ensure(ctx, consts.RepaymentsCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "beneficiaryId", Value: 1}},
		Options: options.Index().SetName("repayments_by_beneficiary"),
	})
}

func ensure(ctx context.Context, collectionName string, model mongo.IndexModel) {
	collection := MDB.Database.Collection(collectionName)
	_, err := collection.Indexes().CreateOne(ctx, model)
	if err != nil {
		logger.Error("Failed to create index on %s: %v", collectionName, err)
		return
	}
	logger.Info("Index ensured on %s", collectionName)
}
