package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI          string
	DBName            string
	SecretKey         string
	SessionTTL        time.Duration
	HFToken           string
	HFModel           string
	ClassifierTimeout time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnvOrDefault("DB_NAME", "healthmate"),
		SecretKey:         getEnvOrDefault("SECRET_KEY", ""),
		SessionTTL:        getDurationEnv("SESSION_TTL", 12, time.Hour),
		HFToken:           getEnvOrDefault("HF_TOKEN", ""),
		HFModel:           getEnvOrDefault("HF_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
		ClassifierTimeout: getDurationEnv("HF_TIMEOUT", 5, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
