package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/lending"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/utils/worker"
)

type LendingApplicationService struct {
	workerPool          *worker.WorkerPool
	beneficiaryRepo     BeneficiaryRepo
	scoreRepo           CreditScoreRepo
	applicationRepo     ApplicationRepo
	decisionPublisher   DecisionPublisher
	notificationService ApplicantNotifier
	policy              configs.LendingPolicy
}

func NewLendingApplicationService(workerPool *worker.WorkerPool, beneficiaryRepo BeneficiaryRepo, scoreRepo CreditScoreRepo, applicationRepo ApplicationRepo, decisionPublisher DecisionPublisher, notificationService ApplicantNotifier, policy configs.LendingPolicy) *LendingApplicationService {
	return &LendingApplicationService{
		workerPool:          workerPool,
		beneficiaryRepo:     beneficiaryRepo,
		scoreRepo:           scoreRepo,
		applicationRepo:     applicationRepo,
		decisionPublisher:   decisionPublisher,
		notificationService: notificationService,
		policy:              policy,
	}
}

// SubmitApplication runs the auto-approval pipeline for a new
// application. Prerequisites are an active beneficiary and an unexpired
// credit score; an approved outcome also sanctions the loan in the same
// transaction.
func (s *LendingApplicationService) SubmitApplication(ctx context.Context, request models.SubmitApplicationRequest) (*models.ApplicationResponse, error) {
	startTime := time.Now().UTC()

	if request.RequestedAmount <= 0 {
		return nil, consts.ErrorInvalidRequestedAmount
	}

	beneficiary, err := s.beneficiaryRepo.BeneficiaryByID(ctx, request.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	if beneficiary.Status != consts.BeneficiaryActive {
		return nil, consts.ErrorBeneficiaryNotActive
	}

	latestScore, err := s.scoreRepo.LatestByBeneficiaryID(ctx, request.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	if latestScore.ValidUntil.Before(startTime) {
		return nil, consts.ErrorCreditScoreExpired
	}

	decision := lending.DetermineAutoApproval(latestScore, request.RequestedAmount, request.Purpose, s.policy)

	applicationID := fmt.Sprintf("APP_%s_%d", request.BeneficiaryID, startTime.UnixMilli())
	application := models.LendingApplication{
		ApplicationID:        applicationID,
		BeneficiaryID:        request.BeneficiaryID,
		RequestedAmount:      request.RequestedAmount,
		Purpose:              request.Purpose,
		RequestedTenure:      request.RequestedTenure,
		CreditScoreID:        latestScore.ScoreID,
		AutoApprovalEligible: decision.Eligible,
		ApprovalStatus:       decision.Status,
		ApprovedAmount:       decision.ApprovedAmount,
		ApprovedTenure:       decision.ApprovedTenure,
		InterestRate:         decision.InterestRate,
		Conditions:           decision.Conditions,
		CreatedAt:            startTime,
	}
	if decision.RejectionReason != nil {
		application.RejectionReason = *decision.RejectionReason
	}

	if decision.Status != consts.StatusManualReview {
		processedAt := time.Now().UTC()
		elapsed := int(processedAt.Sub(startTime).Seconds())
		application.ProcessedAt = &processedAt
		application.ProcessingTime = &elapsed
	}

	var loan *models.Loan
	if decision.Status == consts.StatusAutoApproved {
		loan = buildLoanFromApplication(application, beneficiary, consts.AutoApprovedBy)
	}

	if err := s.applicationRepo.InsertApplicationWithLoan(ctx, application, loan); err != nil {
		return nil, err
	}

	message := lending.StatusMessage(decision.Status, decision.RejectionReason)
	s.publishDecision(ctx, application, "")
	s.notifyApplicant(ctx, application.BeneficiaryID, applicationID, decision.Status, message)

	logger.Info(ctx, "Processed lending application %s with status %s", applicationID, decision.Status)

	return &models.ApplicationResponse{
		ApplicationID:  applicationID,
		Status:         decision.Status,
		ApprovedAmount: decision.ApprovedAmount,
		ProcessingTime: application.ProcessingTime,
		Message:        message,
	}, nil
}

// ReviewApplication records a manual decision. Approval backfills any
// missing terms with the program defaults and sanctions the loan.
func (s *LendingApplicationService) ReviewApplication(ctx context.Context, request models.ReviewApplicationRequest) (*models.ReviewResponse, error) {
	if request.Decision != consts.ReviewDecisionApprove && request.Decision != consts.ReviewDecisionReject {
		return nil, consts.ErrorInvalidReviewDecision
	}

	application, err := s.applicationRepo.ApplicationByID(ctx, request.ApplicationID)
	if err != nil {
		return nil, err
	}
	if application.IsTerminal() {
		return nil, consts.ErrorApplicationAlreadyFinal
	}

	now := time.Now().UTC()
	elapsed := int(now.Sub(application.CreatedAt).Seconds())

	status := consts.StatusRejected
	if request.Decision == consts.ReviewDecisionApprove {
		status = consts.StatusAutoApproved
	}

	update := bson.M{
		"approvalStatus": status,
		"processedAt":    now,
		"processingTime": elapsed,
		"reviewedBy":     request.ReviewedBy,
	}

	var rejectionReason *string
	var loan *models.Loan
	if request.Decision == consts.ReviewDecisionApprove {
		approvedAmount := application.RequestedAmount
		if request.ApprovedAmount != nil {
			approvedAmount = *request.ApprovedAmount
		}
		approvedTenure := 36
		if request.ApprovedTenure != nil {
			approvedTenure = *request.ApprovedTenure
		}
		interestRate := 6.0
		if request.InterestRate != nil {
			interestRate = *request.InterestRate
		}
		conditions := request.Conditions
		if conditions == nil {
			conditions = []string{}
		}

		update["approvedAmount"] = approvedAmount
		update["approvedTenure"] = approvedTenure
		update["interestRate"] = interestRate
		update["conditions"] = conditions

		application.ApprovedAmount = &approvedAmount
		application.ApprovedTenure = &approvedTenure
		application.InterestRate = &interestRate

		beneficiary, err := s.beneficiaryRepo.BeneficiaryByID(ctx, application.BeneficiaryID)
		if err != nil {
			return nil, err
		}
		loan = buildLoanFromApplication(*application, beneficiary, request.ReviewedBy)
	} else if request.RejectionReason != "" {
		rejectionReason = &request.RejectionReason
		update["rejectionReason"] = request.RejectionReason
	}

	if err := s.applicationRepo.UpdateApplicationWithLoan(ctx, request.ApplicationID, update, loan); err != nil {
		return nil, err
	}

	application.ApprovalStatus = status
	message := lending.StatusMessage(status, rejectionReason)
	s.publishDecision(ctx, *application, request.ReviewedBy)
	s.notifyApplicant(ctx, application.BeneficiaryID, application.ApplicationID, status, message)

	logger.Info(ctx, "Reviewed lending application %s: decision=%s by=%s", request.ApplicationID, request.Decision, request.ReviewedBy)

	return &models.ReviewResponse{
		Success: true,
		Status:  status,
		Message: message,
	}, nil
}

func (s *LendingApplicationService) ListApplications(ctx context.Context, status, beneficiaryID string, limit, offset int) (*models.ApplicationPage, error) {
	if limit <= 0 {
		limit = 50
	}
	applications, total, err := s.applicationRepo.ApplicationsFiltered(ctx, status, beneficiaryID, int64(limit), int64(offset))
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []models.LendingApplication{}
	}
	return &models.ApplicationPage{
		Applications: applications,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// LendingAnalytics aggregates application statistics, optionally
// windowed by creation time.
func (s *LendingApplicationService) LendingAnalytics(ctx context.Context, fromDate, toDate *time.Time) (*models.LendingAnalytics, error) {
	applications, err := s.applicationRepo.AllApplications(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &models.LendingAnalytics{
		PurposeDistribution: map[string]int{},
		DailyApplications:   map[string]int{},
	}

	processedCount := 0
	processedSum := 0
	for _, app := range applications {
		if fromDate != nil && app.CreatedAt.Before(*fromDate) {
			continue
		}
		if toDate != nil && app.CreatedAt.After(*toDate) {
			continue
		}

		analytics.TotalApplications++
		switch app.ApprovalStatus {
		case consts.StatusAutoApproved:
			analytics.AutoApproved++
		case consts.StatusManualReview:
			analytics.ManualReview++
		case consts.StatusRejected:
			analytics.Rejected++
		}

		if app.ApprovedAmount != nil {
			analytics.TotalApprovedAmount += *app.ApprovedAmount
		}
		if app.ProcessingTime != nil {
			processedCount++
			processedSum += *app.ProcessingTime
		}

		analytics.PurposeDistribution[app.Purpose]++
		analytics.DailyApplications[app.CreatedAt.UTC().Format("2006-01-02")]++
	}

	if processedCount > 0 {
		analytics.AverageProcessingTime = int(float64(processedSum)/float64(processedCount) + 0.5)
	}
	if analytics.TotalApplications > 0 {
		analytics.AutoApprovalRate = int(float64(analytics.AutoApproved)/float64(analytics.TotalApplications)*100 + 0.5)
	}

	return analytics, nil
}

// publishDecision hands the decision event to the worker pool so the
// request path never blocks on the broker.
func (s *LendingApplicationService) publishDecision(ctx context.Context, application models.LendingApplication, reviewedBy string) {
	if s.decisionPublisher == nil {
		return
	}

	event := models.DecisionEvent{
		ApplicationID:   application.ApplicationID,
		BeneficiaryID:   application.BeneficiaryID,
		Status:          application.ApprovalStatus,
		RequestedAmount: application.RequestedAmount,
		ApprovedAmount:  application.ApprovedAmount,
		InterestRate:    application.InterestRate,
		RejectionReason: application.RejectionReason,
		ReviewedBy:      reviewedBy,
		OccurredAt:      time.Now().UTC(),
	}

	publish := func() {
		if err := s.decisionPublisher.PublishDecisionEvent(context.Background(), event); err != nil {
			logger.Error(ctx, "Failed to publish decision event for %s: %v", event.ApplicationID, err)
		}
	}
	if s.workerPool != nil {
		s.workerPool.Submit(publish)
		return
	}
	go publish()
}

func (s *LendingApplicationService) notifyApplicant(ctx context.Context, beneficiaryID, applicationID, status, message string) {
	if s.notificationService == nil {
		return
	}
	go func() {
		if err := s.notificationService.NotifyApplicant(context.Background(), beneficiaryID, applicationID, status, message); err != nil {
			logger.Error(ctx, "Failed to notify beneficiary %s for application %s: %v", beneficiaryID, applicationID, err)
		}
	}()
}

// buildLoanFromApplication sanctions a loan on the approved terms,
// falling back to the program defaults when a term is missing.
func buildLoanFromApplication(application models.LendingApplication, beneficiary *models.Beneficiary, approvedBy string) *models.Loan {
	now := time.Now().UTC()

	loanAmount := application.RequestedAmount
	if application.ApprovedAmount != nil {
		loanAmount = *application.ApprovedAmount
	}
	loanTenure := 36
	if application.ApprovedTenure != nil {
		loanTenure = *application.ApprovedTenure
	}
	interestRate := 6.0
	if application.InterestRate != nil {
		interestRate = *application.InterestRate
	}

	disbursement := now
	return &models.Loan{
		LoanID:           fmt.Sprintf("LOAN_%s_%d", application.BeneficiaryID, now.UnixMilli()),
		BeneficiaryID:    application.BeneficiaryID,
		LoanAmount:       loanAmount,
		LoanTenure:       loanTenure,
		InterestRate:     interestRate,
		Purpose:          application.Purpose,
		SanctionDate:     now,
		DisbursementDate: &disbursement,
		MaturityDate:     now.AddDate(0, loanTenure, 0),
		Status:           consts.LoanSanctioned,
		LoanType:         application.Purpose,
		ChannelPartner:   beneficiary.ChannelPartner,
		ApprovedBy:       approvedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
