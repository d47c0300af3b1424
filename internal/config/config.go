package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort       int           `json:"server_port"`
	AppEnv           string        `json:"app_env"`
	JWTSecretKey     string        `json:"jwt_secret_key"`
	JWTExpiration    time.Duration `json:"jwt_expiration"`
	BcryptCost       int           `json:"bcrypt_cost"`
	DefaultRateLimit int           `json:"default_rate_limit"`
	GlobalRateLimit  int           `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	// Token lifetime, e.g. "24h" or "30m". The secret and lifetime are
	// fixed for the process; there is no runtime rotation.
	jwtExpiration := 24 * time.Hour
	if value := os.Getenv("JWT_EXPIRES_IN"); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			jwtExpiration = parsed
		}
	}

	bcryptCost, _ := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if bcryptCost == 0 {
		bcryptCost = 12
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per tenant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	return &Config{
		ServerPort:       serverPort,
		AppEnv:           os.Getenv("APP_ENV"),
		JWTSecretKey:     jwtSecret,
		JWTExpiration:    jwtExpiration,
		BcryptCost:       bcryptCost,
		DefaultRateLimit: defaultRateLimit,
		GlobalRateLimit:  globalRateLimit,
	}, nil
}
