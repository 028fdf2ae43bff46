package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is read once at startup and
// never reloaded.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// LoadConfig loads configuration from environment variables and an optional
// .env file next to the binary.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGO_DBNAME", "corkboard")
	viper.SetDefault("MONGO_TIMEOUT", 5)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SESSION_TTL_HOURS", 168)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DBNAME"),
			Timeout:  time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
	}

	if cfg.Session.Secret == "" {
		log.Println("WARNING: SESSION_SECRET is not set; set a secure value in production")
	}

	return cfg, nil
}
