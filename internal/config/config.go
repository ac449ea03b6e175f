package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	AppPort           string
	AppEnv            string
	JWTSecret         string
	FrontendOrigin    string
	RequireAuthWrites bool
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		FrontendOrigin:    os.Getenv("FRONTEND_ORIGIN"),
		RequireAuthWrites: os.Getenv("REQUIRE_AUTH_WRITES") == "true",
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "5001"
	}
	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "http://localhost:5173"
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	// No hardcoded fallback secret: a missing secret is a startup failure.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}
