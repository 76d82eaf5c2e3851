package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type LoanRepository struct {
	repo *MongoRepository[models.Loan]
}

func NewLoanRepository() *LoanRepository {
	collection := db.MDB.Database.Collection(consts.LoansCollection)
	return &LoanRepository{
		repo: NewMongoRepository[models.Loan](collection),
	}
}

func (r *LoanRepository) LoansByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.Loan, error) {
	loans, err := r.repo.FindAll(bson.M{"beneficiaryId": beneficiaryID})
	if err != nil {
		logger.Error(ctx, "loans : Error while fetching %v", err.Error())
		return nil, err
	}
	return loans, nil
}

func (r *LoanRepository) InsertLoan(ctx context.Context, loan models.Loan) error {
	_, err := r.repo.Create(loan)
	if err != nil {
		logger.Error(ctx, "loans : Error while inserting %v", err.Error())
		return err
	}
	return nil
}
