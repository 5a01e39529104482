package exceptions

import (
	"fmt"
	"medichat-service/internal/pkg/constvars"
)

var (
	// Parse and validation
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrFieldValidation = func(field, reason string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, fmt.Sprintf("%s %s", field, reason), constvars.ErrDevFieldValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Intake sessions
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, constvars.ErrDevSessionNotFound)
	}
	ErrSessionStoreCreate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreCreate)
	}
	ErrSessionStoreGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreGet)
	}
	ErrSessionStoreUpdate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreUpdate)
	}
	ErrRegistrationIncomplete = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientRegistrationIncomplete, constvars.ErrDevRegistrationIncomplete)
	}
	ErrRegistrationAlreadyComplete = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientRegistrationAlreadyComplete, constvars.ErrDevRegistrationAlreadyComplete)
	}
	ErrUnexpectedField = func(expected, got string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientUnexpectedField, fmt.Sprintf("%s: expected %q, got %q", constvars.ErrDevUnexpectedField, expected, got))
	}

	// Patient persistence
	ErrPatientFileRead = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPatientFileRead)
	}
	ErrPatientFileWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPatientFileWrite)
	}
	ErrPatientFileLock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPatientFileLock)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBIterateDocuments)
	}

	// Documents and vector index
	ErrDocumentsFolderNotFound = func(folder string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientDocumentsFolderNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevDocumentsFolderNotFound, folder))
	}
	ErrNoDocumentsFound = func(folder string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoDocumentsFound, fmt.Sprintf("%s: %s", constvars.ErrDevNoDocumentsFound, folder))
	}
	ErrDocumentLoad = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientChatUnavailable, fmt.Sprintf("%s: %s", constvars.ErrDevDocumentLoadFailed, path))
	}
	ErrBucketSync = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, constvars.ErrDevBucketSyncFailed)
	}
	ErrVectorIndexBuild = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, constvars.ErrDevVectorIndexBuild)
	}
	ErrVectorIndexNotReady = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientChatNotInitialized, constvars.ErrDevVectorIndexNotReady)
	}
	ErrVectorIndexQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, constvars.ErrDevVectorIndexQuery)
	}

	// Hosted model
	ErrModelInvoke = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, constvars.ErrDevModelInvoke)
	}
	ErrModelOutputParse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, constvars.ErrDevModelOutputParse)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}

	// Messaging
	ErrPublishMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishMessage)
	}
)
