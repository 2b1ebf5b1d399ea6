package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string        `yaml:"HTTP_PORT"          env:"HTTP_PORT"          env-default:"8080"`
	MongoURI         string        `yaml:"MONGO_URI"          env:"MONGO_URI"          env-default:"mongodb://localhost:27017"`
	MongoDBName      string        `yaml:"MONGO_DB_NAME"      env:"MONGO_DB_NAME"      env-default:"surveylink"`
	RedisAddr        string        `yaml:"REDIS_ADDR"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	SurveyCacheTTL   time.Duration `yaml:"SURVEY_CACHE_TTL"   env:"SURVEY_CACHE_TTL"   env-default:"10m"`
	LogLevel         string        `yaml:"LOG_LEVEL"          env:"LOG_LEVEL"          env-default:"info"`
	JWTSecret        string        `yaml:"JWT_SECRET"         env:"JWT_SECRET"         env-default:"super-secret-key-change-in-production"`
	OperatorUsername string        `yaml:"OPERATOR_USERNAME"  env:"OPERATOR_USERNAME"  env-default:"admin"`
	OperatorPassword string        `yaml:"OPERATOR_PASSWORD"  env:"OPERATOR_PASSWORD"  env-default:"password123"`
	CORSOrigins      string        `yaml:"CORS_ORIGINS"       env:"CORS_ORIGINS"       env-default:"*"`
}

func New() (*Config, error) {
	// .env is optional, real deployments set the environment directly
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
