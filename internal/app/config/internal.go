package config

type InternalConfig struct {
	App    App
	Intake Intake
	RAG    RAG
}

type App struct {
	Env             string
	Port            string
	Version         string
	MaxRequests     int
	ShutdownTimeout int
}

type Intake struct {
	// SessionStoreBackend selects "memory" or "redis".
	SessionStoreBackend string
	SessionTTLInMinutes int
	// PatientStoreBackend selects "jsonfile" or "mongo".
	PatientStoreBackend string
	PatientDataDir      string
	PatientFileName     string
	MongoCollection     string
	PublishSavedEvents  bool
	SavedEventQueue     string
}

type RAG struct {
	DocumentsDir       string
	IndexDir           string
	CollectionName     string
	ChunkSize          int
	ChunkOverlap       int
	TopK               int
	Model              string
	EmbeddingModel     string
	APIBaseURL         string
	APIKey             string
	MaxTokens          int
	QuestionsPerMinute int
	SyncFromBucket     bool
	BucketName         string
}
