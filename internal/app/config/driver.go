package config

type (
	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
