package middlewares

import (
	"medichat-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RequestLog     *logrus.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, requestLog *logrus.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		RequestLog:     requestLog,
		InternalConfig: internalConfig,
	}
}
