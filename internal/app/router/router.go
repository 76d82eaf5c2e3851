package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/app/handlers"
	"gramsetu/credit_lending/internal/app/middleware"
	"gramsetu/credit_lending/internal/pkg/kafka/producer"
	"gramsetu/credit_lending/internal/pkg/notification"
	"gramsetu/credit_lending/internal/pkg/pubsub"
	"gramsetu/credit_lending/internal/pkg/services"
	"gramsetu/credit_lending/internal/pkg/store"
	"gramsetu/credit_lending/internal/pkg/store/repository"
	"gramsetu/credit_lending/internal/pkg/utils/worker"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	beneficiaryRepo := store.NewBeneficiaryRepository()
	loanRepo := store.NewLoanRepository()
	repaymentRepo := store.NewRepaymentRepository()
	consumptionRepo := store.NewConsumptionRecordRepository()
	scoreRepo := store.NewCreditScoreRepository(redisAdapter)
	applicationRepo := store.NewLendingApplicationRepository(loanRepo)

	notificationService := notification.NewNotificationService(nil)
	if pubsubPublisher != nil {
		notificationService = notification.NewNotificationService(pubsubPublisher)
	}

	var decisionPublisher services.DecisionPublisher
	if producer.KafkaProducer != nil {
		decisionPublisher = producer.KafkaProducer
	}

	policy := configs.LoadLendingPolicy()

	// Credit Scoring
	creditScoreService := services.NewCreditScoreService(beneficiaryRepo, loanRepo, repaymentRepo, consumptionRepo, scoreRepo)
	creditScoreHandler := handlers.NewCreditScoreHandler(creditScoreService)

	// Digital Lending
	lendingService := services.NewLendingApplicationService(workerPool, beneficiaryRepo, scoreRepo, applicationRepo, decisionPublisher, notificationService, policy)
	lendingHandler := handlers.NewLendingHandler(lendingService)

	// Consumption Data
	consumptionService := services.NewConsumptionService(beneficiaryRepo, consumptionRepo)
	consumptionHandler := handlers.NewConsumptionHandler(consumptionService)

	// Beneficiaries
	beneficiaryService := services.NewBeneficiaryService(beneficiaryRepo, loanRepo, scoreRepo, consumptionRepo)
	beneficiaryHandler := handlers.NewBeneficiaryHandler(beneficiaryService)

	r.POST("/CreditLending/Beneficiaries", beneficiaryHandler.CreateBeneficiary)
	r.GET("/CreditLending/Beneficiaries/:BeneficiaryId", beneficiaryHandler.GetBeneficiary)
	r.GET("/CreditLending/Beneficiaries/:BeneficiaryId/Profile", beneficiaryHandler.GetProfile)
	r.PUT("/CreditLending/Beneficiaries/Status", beneficiaryHandler.UpdateStatus)

	r.POST("/CreditLending/ConsumptionData", consumptionHandler.UploadConsumption)
	r.POST("/CreditLending/ConsumptionData/Bulk", consumptionHandler.BulkUploadConsumption)
	r.GET("/CreditLending/ConsumptionData/:BeneficiaryId", consumptionHandler.GetConsumption)
	r.POST("/CreditLending/ConsumptionData/Verify", consumptionHandler.VerifyConsumption)

	r.POST("/CreditLending/Scores/Calculate", creditScoreHandler.CalculateScore)
	r.GET("/CreditLending/Scores/:BeneficiaryId", creditScoreHandler.GetLatestScore)
	r.GET("/CreditLending/Scores/:BeneficiaryId/History", creditScoreHandler.GetScoreHistory)
	r.GET("/CreditLending/Scores", creditScoreHandler.ListScores)
	r.GET("/CreditLending/Analytics/Scores", creditScoreHandler.ScoreAnalytics)

	r.POST("/CreditLending/Applications", lendingHandler.SubmitApplication)
	r.POST("/CreditLending/Applications/Review", lendingHandler.ReviewApplication)
	r.GET("/CreditLending/Applications", lendingHandler.ListApplications)
	r.GET("/CreditLending/Analytics/Lending", lendingHandler.LendingAnalytics)

	r.GET("/CreditLending/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
