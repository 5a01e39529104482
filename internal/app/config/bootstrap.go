package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the wired drivers into route and service setup. Optional
// drivers are nil when their backend is not selected.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	RequestLogger  *logrus.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	Redis          *redis.Client
	MongoDB        *mongo.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
}
