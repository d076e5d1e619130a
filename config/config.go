package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Redis carries both the connection settings and the score job queue tuning.
// QueueTimeout bounds the worker's blocking pop so shutdown is never stuck
// behind an idle BRPOP.
type Redis struct {
	Host         string
	Port         string
	Password     string
	DB           int
	QueueName    string
	QueueTimeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SCORE_QUEUE_NAME", "score_jobs")
	viper.SetDefault("SCORE_QUEUE_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Host = viper.GetString("REDIS_HOST")
	config.Redis.Port = viper.GetString("REDIS_PORT")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.QueueName = viper.GetString("SCORE_QUEUE_NAME")
	config.Redis.QueueTimeout = time.Duration(viper.GetInt("SCORE_QUEUE_TIMEOUT_SECONDS")) * time.Second

	log.Info().Str("serverPort", config.Server.Port).Str("dbHost", config.Database.Host).Str("queue", config.Redis.QueueName).Msg("Config loaded")
	return &config, nil
}
