package config

import (
	"os"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"catalog": {
				Name:    "catalog-service",
				BaseURL: getEnv("CATALOG_SERVICE_URL", "http://localhost:8081"),
				Timeout: 30 * time.Second,
			},
			"ledger": {
				Name:    "ledger-service",
				BaseURL: getEnv("LEDGER_SERVICE_URL", "http://localhost:8082"),
				Timeout: 30 * time.Second,
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
