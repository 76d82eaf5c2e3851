package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type LendingApplicationRepository struct {
	repo     *MongoRepository[models.LendingApplication]
	loanRepo *LoanRepository
}

func NewLendingApplicationRepository(loanRepo *LoanRepository) *LendingApplicationRepository {
	collection := db.MDB.Database.Collection(consts.LendingApplicationsCollection)
	return &LendingApplicationRepository{
		repo:     NewMongoRepository[models.LendingApplication](collection),
		loanRepo: loanRepo,
	}
}

func (r *LendingApplicationRepository) InsertApplication(ctx context.Context, application models.LendingApplication) error {
	_, err := r.repo.Create(application)
	if err != nil {
		logger.Error(ctx, "application : Error while inserting %v", err.Error())
		return err
	}
	return nil
}

// InsertApplicationWithLoan writes the application and, for an approved
// outcome, the sanctioned loan in one transaction so neither lands
// without the other.
func (r *LendingApplicationRepository) InsertApplicationWithLoan(ctx context.Context, application models.LendingApplication, loan *models.Loan) error {
	if loan == nil {
		return r.InsertApplication(ctx, application)
	}

	session, err := db.MDB.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnErr := mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return err
		}

		if err := r.InsertApplication(sessCtx, application); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		if err := r.loanRepo.InsertLoan(sessCtx, *loan); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		return session.CommitTransaction(sessCtx)
	})
	if txnErr != nil {
		logger.Error(ctx, "application : Transaction failed %v", txnErr.Error())
		return txnErr
	}
	return nil
}

func (r *LendingApplicationRepository) ApplicationByID(ctx context.Context, applicationID string) (*models.LendingApplication, error) {
	result, err := r.repo.Read(bson.M{"applicationId": applicationID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorApplicationNotFound
		}
		logger.Error(ctx, "application : Error while reading %v", err.Error())
		return nil, err
	}
	return &result, nil
}

func (r *LendingApplicationRepository) UpdateApplication(ctx context.Context, applicationID string, update bson.M) error {
	filter := bson.M{"applicationId": applicationID}
	if err := r.repo.Update(filter, update); err != nil {
		logger.Error(ctx, "application : Error while updating %v", err.Error())
		return err
	}
	return nil
}

// UpdateApplicationWithLoan applies a review decision and, for an
// approval, sanctions the loan in the same transaction so the
// application is never approved without its loan.
func (r *LendingApplicationRepository) UpdateApplicationWithLoan(ctx context.Context, applicationID string, update bson.M, loan *models.Loan) error {
	if loan == nil {
		return r.UpdateApplication(ctx, applicationID, update)
	}

	session, err := db.MDB.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnErr := mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return err
		}

		if err := r.UpdateApplication(sessCtx, applicationID, update); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		if err := r.loanRepo.InsertLoan(sessCtx, *loan); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		return session.CommitTransaction(sessCtx)
	})
	if txnErr != nil {
		logger.Error(ctx, "application : Review transaction failed %v", txnErr.Error())
		return txnErr
	}
	return nil
}

// ApplicationsFiltered lists applications newest first with optional
// status and beneficiary filters, returning the total match count for
// pagination.
func (r *LendingApplicationRepository) ApplicationsFiltered(ctx context.Context, status, beneficiaryID string, limit, offset int64) ([]models.LendingApplication, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["approvalStatus"] = status
	}
	if beneficiaryID != "" {
		filter["beneficiaryId"] = beneficiaryID
	}

	total, err := r.repo.CountDocuments(filter)
	if err != nil {
		logger.Error(ctx, "application : Error while counting %v", err.Error())
		return nil, 0, err
	}

	applications, err := r.repo.FindPaged(filter, bson.D{{Key: "createdAt", Value: -1}}, limit, offset)
	if err != nil {
		logger.Error(ctx, "application : Error while listing %v", err.Error())
		return nil, 0, err
	}
	return applications, total, nil
}

func (r *LendingApplicationRepository) ApplicationsByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]models.LendingApplication, error) {
	applications, err := r.repo.FindPaged(bson.M{"beneficiaryId": beneficiaryID}, bson.D{{Key: "createdAt", Value: -1}}, 0, 0)
	if err != nil {
		logger.Error(ctx, "application : Error while fetching %v", err.Error())
		return nil, err
	}
	return applications, nil
}

func (r *LendingApplicationRepository) AllApplications(ctx context.Context) ([]models.LendingApplication, error) {
	applications, err := r.repo.FindAll(bson.M{})
	if err != nil {
		logger.Error(ctx, "application : Error while fetching all %v", err.Error())
		return nil, err
	}
	return applications, nil
}
