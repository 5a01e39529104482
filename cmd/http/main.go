package main

import (
	"context"
	"log"
	"medichat-service/internal/app/config"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/delivery/http/routers"
	"medichat-service/internal/app/drivers/database"
	"medichat-service/internal/app/drivers/logger"
	"medichat-service/internal/app/drivers/messaging"
	"medichat-service/internal/app/drivers/storage"
	"medichat-service/internal/app/services/core/intake"
	"medichat-service/internal/app/services/core/patients"
	"medichat-service/internal/app/services/core/rag"
	"medichat-service/internal/app/services/shared/documents"
	"medichat-service/internal/app/services/shared/events"
	"medichat-service/internal/app/services/shared/llm"
	"medichat-service/internal/app/services/shared/sessionstore"
	"medichat-service/internal/app/services/shared/vectorindex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()
	requestLogger := logger.NewLogrusLogger(internalConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Drivers are only dialed when the selected backends need them.
	if internalConfig.Intake.SessionStoreBackend == "redis" {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.Intake.PatientStoreBackend == "mongo" {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if internalConfig.Intake.PublishSavedEvents {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.RAG.SyncFromBucket {
		bootstrap.Minio = storage.NewMinioClient(driverConfig)
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("waiting for pending requests to be processed before shutdown")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, bootstrap.RequestLogger, internalConfig)

	// Session store
	var sessionStore contracts.SessionStore
	switch internalConfig.Intake.SessionStoreBackend {
	case "redis":
		sessionTTL := time.Duration(internalConfig.Intake.SessionTTLInMinutes) * time.Minute
		sessionStore = sessionstore.NewRedisSessionStore(bootstrap.Redis, sessionTTL)
	default:
		sessionStore = sessionstore.NewMemorySessionStore()
	}

	// Patient repository
	var patientRepository contracts.PatientRepository
	switch internalConfig.Intake.PatientStoreBackend {
	case "mongo":
		patientRepository = patients.NewPatientMongoRepository(
			bootstrap.MongoDB,
			bootstrap.DriverConfig.MongoDB.DbName,
			internalConfig.Intake.MongoCollection,
		)
	default:
		patientRepository = patients.NewJSONFilePatientRepository(
			internalConfig.Intake.PatientDataDir,
			internalConfig.Intake.PatientFileName,
		)
	}

	// Saved-patient events
	var eventPublisher contracts.EventPublisher
	if internalConfig.Intake.PublishSavedEvents {
		publisher, err := events.NewAmqpPublisher(bootstrap.RabbitMQ, internalConfig.Intake.SavedEventQueue)
		if err != nil {
			log.Fatalf("Failed to set up event publisher: %v", err)
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopPublisher(zapLogger)
	}

	// Intake
	intakeUsecase := intake.NewIntakeUsecase(zapLogger, sessionStore, patientRepository, eventPublisher)
	intakeController := intake.NewIntakeController(zapLogger, intakeUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientRepository)
	patientController := patients.NewPatientController(zapLogger, patientUsecase)

	// RAG chat
	llmClient, err := llm.NewClient(zapLogger, internalConfig.RAG)
	if err != nil {
		log.Fatalf("Failed to set up model client: %v", err)
	}

	vectorIndex, err := vectorindex.NewChromemIndex(
		zapLogger,
		internalConfig.RAG.IndexDir,
		internalConfig.RAG.CollectionName,
		llmClient.EmbedQuery,
	)
	if err != nil {
		log.Fatalf("Failed to open vector index: %v", err)
	}
	// A previously built index is reused across restarts when present.
	if err := vectorIndex.Load(context.Background()); err == nil {
		zapLogger.Info("vector index loaded from disk", zap.Int("chunks", vectorIndex.Count()))
	}

	documentSource := documents.NewDocumentService(
		zapLogger,
		internalConfig.RAG.DocumentsDir,
		internalConfig.RAG.ChunkSize,
		internalConfig.RAG.ChunkOverlap,
	)

	var bucketSyncer contracts.BucketSyncer
	if internalConfig.RAG.SyncFromBucket {
		bucketSyncer = documents.NewMinioBucketSyncer(
			zapLogger,
			bootstrap.Minio,
			internalConfig.RAG.BucketName,
			internalConfig.RAG.DocumentsDir,
		)
	}

	chatUsecase := rag.NewChatUsecase(zapLogger, documentSource, bucketSyncer, vectorIndex, llmClient, internalConfig.RAG.TopK)
	chatController := rag.NewChatController(zapLogger, chatUsecase)

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, intakeController, patientController, chatController)
}
