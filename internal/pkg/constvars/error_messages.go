package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"numeric":       "must be a number",
	"mobile_number": "must be exactly 10 digits",
	"blood_group":   "must be one of [A+, A-, B+, B-, AB+, AB-, O+, O-]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "Cannot process your request"
	ErrClientSomethingWrongWithApplication = "Something wrong with the application"
	ErrClientServerLongRespond             = "Server takes too long to respond"
	ErrClientTooManyRequests               = "Too many requests, please slow down"

	ErrClientSessionNotFound             = "Session not found"
	ErrClientRegistrationIncomplete      = "Registration is not complete yet"
	ErrClientRegistrationAlreadyComplete = "Registration is already complete"
	ErrClientUnexpectedField             = "Answer does not match the current question"

	ErrClientDocumentsFolderNotFound = "Documents folder not found"
	ErrClientNoDocumentsFound        = "No documents found"
	ErrClientChatNotInitialized      = "Knowledge base is not initialized yet"
	ErrClientChatUnavailable         = "Unable to answer right now, please try again"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON        = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "failed to marshal value to JSON"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing request"

	ErrDevSessionNotFound             = "intake session not found in session store"
	ErrDevSessionStoreCreate          = "failed to create session in session store"
	ErrDevSessionStoreGet             = "failed to get session from session store"
	ErrDevSessionStoreUpdate          = "failed to update session in session store"
	ErrDevRegistrationIncomplete      = "registration incomplete, not all steps answered"
	ErrDevRegistrationAlreadyComplete = "registration already complete, no further answers accepted"
	ErrDevUnexpectedField             = "submitted field does not match current step field"
	ErrDevFieldValidationFailed       = "field validation failed"

	ErrDevPatientFileRead         = "failed to read patient data file"
	ErrDevPatientFileWrite        = "failed to write patient data file"
	ErrDevPatientFileLock         = "failed to acquire patient data file lock"
	ErrDevMongoDBInsertDocument   = "failed to insert document to mongoDB"
	ErrDevMongoDBFindDocument     = "failed to find document in mongoDB"
	ErrDevMongoDBIterateDocuments = "failed to iterate mongoDB documents"

	ErrDevDocumentsFolderNotFound = "documents folder does not exist"
	ErrDevNoDocumentsFound        = "no documents with recognized extensions found"
	ErrDevDocumentLoadFailed      = "failed to load and split document"
	ErrDevBucketSyncFailed        = "failed to sync documents from object storage bucket"

	ErrDevVectorIndexBuild    = "failed to build vector index"
	ErrDevVectorIndexNotReady = "vector index is not built or loaded"
	ErrDevVectorIndexQuery    = "failed to query vector index"
	ErrDevEmbeddingFailed     = "failed to create embeddings"

	ErrDevModelInvoke      = "failed to invoke hosted language model"
	ErrDevModelOutputParse = "failed to parse language model JSON output"

	ErrDevRedisSet       = "failed to set value to redis"
	ErrDevRedisGet       = "failed to get value from redis"
	ErrDevPublishMessage = "failed to publish message to queue"
)
