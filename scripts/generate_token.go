package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Define command line flags
	userID := flag.String("user", "", "User ID for the token")
	email := flag.String("email", "", "Email for the token")
	role := flag.String("role", "MEMBER", "Role for the token (ADMIN or MEMBER)")
	tenantID := flag.String("tenant", "", "Tenant ID for the token")
	tenantSlug := flag.String("slug", "", "Tenant slug for the token")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	if *tenantID == "" {
		log.Fatal("Tenant ID is required")
	}

	// Create claims
	claims := &Claims{
		UserID:     *userID,
		Email:      *email,
		Role:       *role,
		TenantID:   *tenantID,
		TenantSlug: *tenantSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Get JWT secret from environment
	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))

	// Sign the token
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
