//go:build ignore

// This script generates an API key, its bcrypt hash and a JWT secret.
// Run with: go run scripts/generate_keys.go [-subject dispatcher]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
		os.Exit(1)
	}
}

func main() {
	subject := flag.String("subject", "dispatcher", "Subject of the sample bearer token")
	ttl := flag.Duration("ttl", 24*time.Hour, "Lifetime of the sample bearer token")
	flag.Parse()

	fmt.Println("=== Truckload Service Key Generator ===")
	fmt.Println()

	// JWT secret: 32 bytes = 256 bits for HS256
	jwtSecret, err := generateSecureKey(32)
	exitOnError("JWT secret", err)

	apiKey, err := generateSecureKey(24)
	exitOnError("API key", err)

	apiKeyHash, err := service.HashAPIKey(apiKey)
	exitOnError("API key hash", err)

	auth := service.NewAuthService(config.AuthConfig{JWTSecretKey: jwtSecret, JWTIssuer: "truckload-service"})
	token, err := auth.IssueToken(*subject, *ttl)
	exitOnError("sample token", err)

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("AUTH_ENABLED=true")
	fmt.Println()
	fmt.Println("# JWT Configuration")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println("JWT_ISSUER=truckload-service")
	fmt.Println()
	fmt.Println("# API key, stored as a bcrypt hash (quote it: the hash contains '$')")
	fmt.Printf("API_KEYS='%s'\n", apiKeyHash)
	fmt.Println()
	fmt.Println("Give clients the plain key:")
	fmt.Printf("  X-API-Key: %s\n", apiKey)
	fmt.Println()
	fmt.Printf("Sample bearer token for %q, valid for %s:\n", *subject, *ttl)
	fmt.Printf("  Authorization: Bearer %s\n", token)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
