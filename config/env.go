package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	Port             string
	Env              string
	JWTKey           []byte
	CookieExpireDays int
	RabbitMQURL      string
)

// LoadEnv reads configuration from the environment. The service cannot issue
// tokens without a signing secret, so a missing JWT_SECRET is fatal.
func LoadEnv() {
	// A missing .env file is fine; in containers everything comes from the environment.
	_ = godotenv.Load()

	Port = getEnv("PORT", "8080")
	Env = getEnv("APP_ENV", "development")
	RabbitMQURL = os.Getenv("RABBITMQ_URL")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		fmt.Println("JWT_SECRET is not set")
		os.Exit(1)
	}
	JWTKey = []byte(jwtSecret)

	CookieExpireDays = 30
	if v := os.Getenv("JWT_COOKIE_EXPIRE"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			fmt.Println("JWT_COOKIE_EXPIRE must be a positive number of days")
			os.Exit(1)
		}
		CookieExpireDays = days
	}
}

func IsProduction() bool {
	return Env == "production"
}

func IsDevelopment() bool {
	return Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
