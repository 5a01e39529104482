package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Intake messages
	SessionCreatedSuccess = "session created successfully"
	SessionGetSuccess     = "get session successfully"
	AnswerAcceptedSuccess = "answer accepted"
	RegistrationComplete  = "registration complete"
	StepBackSuccess       = "moved to previous step"
	SummaryGetSuccess     = "get summary successfully"
	PatientSavedSuccess   = "patient saved successfully"
	PatientListGetSuccess = "get patients successfully"

	// Chat messages
	ChatInitializedSuccess    = "knowledge base initialized successfully"
	ChatStatusGetSuccess      = "get chat status successfully"
	ChatAnswerSuccess         = "question answered successfully"
	ChatHistoryGetSuccess     = "get chat history successfully"
	ChatHistoryClearedSuccess = "chat history cleared"
)
