package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	DeliveryFee      int64 // flat fee charged per restaurant order
	EstimatedMinutes int   // default ETA stamped on new orders
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		DBSource:         getEnv("DB_SOURCE", "chai-order.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		DeliveryFee:      int64(getEnvInt("DELIVERY_FEE", 25)),
		EstimatedMinutes: getEnvInt("ESTIMATED_DELIVERY_MIN", 30),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
