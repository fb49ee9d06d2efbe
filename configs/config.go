package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	TaxRate        float64
	DeliveryCharge float64

	RabbitURL string
	Seed      bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "dineboard.db"),
		Port:           getEnv("PORT", "8000"),
		TaxRate:        getEnvFloat("TAX_RATE", 0.10),
		DeliveryCharge: getEnvFloat("DELIVERY_CHARGE", 50),
		RabbitURL:      os.Getenv("RABBITMQ_URL"),
		Seed:           getEnv("SEED", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}
