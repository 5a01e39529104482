package config

import (
	"medichat-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medichat"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Endpoint: utils.GetEnvString("MINIO_ENDPOINT", "localhost:9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Intake: Intake{
			SessionStoreBackend: utils.GetEnvString("SESSION_STORE_BACKEND", "memory"),
			SessionTTLInMinutes: utils.GetEnvInt("SESSION_TTL_IN_MINUTES", 60),
			PatientStoreBackend: utils.GetEnvString("PATIENT_STORE_BACKEND", "jsonfile"),
			PatientDataDir:      utils.GetEnvString("PATIENT_DATA_DIR", "patient_data"),
			PatientFileName:     utils.GetEnvString("PATIENT_FILE_NAME", "patients.json"),
			MongoCollection:     utils.GetEnvString("PATIENT_MONGO_COLLECTION", "patients"),
			PublishSavedEvents:  utils.GetEnvBool("PUBLISH_SAVED_EVENTS", false),
			SavedEventQueue:     utils.GetEnvString("SAVED_EVENT_QUEUE", "patient.saved"),
		},
		RAG: RAG{
			DocumentsDir:       utils.GetEnvString("RAG_DOCUMENTS_DIR", "documents"),
			IndexDir:           utils.GetEnvString("RAG_INDEX_DIR", "faiss_index"),
			CollectionName:     utils.GetEnvString("RAG_COLLECTION_NAME", "medical-documents"),
			ChunkSize:          utils.GetEnvInt("RAG_CHUNK_SIZE", 700),
			ChunkOverlap:       utils.GetEnvInt("RAG_CHUNK_OVERLAP", 200),
			TopK:               utils.GetEnvInt("RAG_TOP_K", 3),
			Model:              utils.GetEnvString("RAG_MODEL", "openai/gpt-oss-120b"),
			EmbeddingModel:     utils.GetEnvString("RAG_EMBEDDING_MODEL", "text-embedding-3-small"),
			APIBaseURL:         utils.GetEnvString("RAG_API_BASE_URL", "https://api.groq.com/openai/v1"),
			APIKey:             utils.GetEnvString("RAG_API_KEY", ""),
			MaxTokens:          utils.GetEnvInt("RAG_MAX_TOKENS", 2048),
			QuestionsPerMinute: utils.GetEnvInt("RAG_QUESTIONS_PER_MINUTE", 10),
			SyncFromBucket:     utils.GetEnvBool("RAG_SYNC_FROM_BUCKET", false),
			BucketName:         utils.GetEnvString("RAG_BUCKET_NAME", "medical-documents"),
		},
	}
}
