package main

import (
	"context"
	"log"
	"strconv"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/app/router"
	"gramsetu/credit_lending/internal/pkg/db"
	"gramsetu/credit_lending/internal/pkg/kafka/producer"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/otel"
	"gramsetu/credit_lending/internal/pkg/pubsub"
	"gramsetu/credit_lending/internal/pkg/redis"
	"gramsetu/credit_lending/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection
	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		logger.Error(ctx, "Error connecting to MongoDB: %v", dbErr)
	}
	db.MDB = mdb
	defer mdb.Close()

	db.EnsureIndexes()

	kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_DECISION_TOPIC)
	if err != nil {
		logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
	}
	logger.Info(ctx, "Kafka Producer Created")
	producer.KafkaProducer = kafkaProducer
	if kafkaProducer != nil {
		defer kafkaProducer.Close()
	}

	// Initialize Pub/Sub Publisher
	var pubsubPublisher *pubsub.PubSubPublisher
	if configs.PUBSUB_ENABLED {
		pubsubPublisher, err = pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID)
		if err != nil {
			logger.Error(ctx, "Failed to create Pub/Sub Publisher: %v", err)
		} else {
			defer pubsubPublisher.Close()
			logger.Info(ctx, "Pub/Sub Publisher Created")
		}
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, er)
	}

	// Connect to Redis
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	r := router.SetupRouter(workerPool, redisClient.Client, pubsubPublisher)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
