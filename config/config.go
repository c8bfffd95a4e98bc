package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// MaxUploadBytes caps any single request body at the boundary, before
// multipart parsing or the asset handler run.
const MaxUploadBytes = 16 << 20 // 16MB

// DefaultUploadDir is where image assets land when UPLOAD_DIR is unset.
const DefaultUploadDir = "./static/uploads"

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production, environment variables are set directly.
	err := godotenv.Load()
	if err != nil {
		// .env file not found is not an error - environment variables
		// are already available in os.Getenv().
		return nil
	}
	return nil
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	// Critical variables - application cannot function without these
	if os.Getenv("SESSION_SECRET") == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if os.Getenv("ADMIN_USERNAME") == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if os.Getenv("ADMIN_PASSWORD") == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	// Non-critical variables - log warnings but don't fail
	if os.Getenv("UPLOAD_DIR") == "" {
		log.Printf("WARNING: UPLOAD_DIR not set - defaulting to %s", DefaultUploadDir)
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// AdminCreds is the single shared back-office credential. The password
// is hashed once at startup; the plaintext is never kept around.
type AdminCreds struct {
	Username     string
	PasswordHash []byte
}

// LoadAdminCreds reads ADMIN_USERNAME/ADMIN_PASSWORD from the
// environment and hashes the password with bcrypt.
func LoadAdminCreds() (AdminCreds, error) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return AdminCreds{}, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AdminCreds{}, fmt.Errorf("hashing admin password: %w", err)
	}

	return AdminCreds{Username: username, PasswordHash: hash}, nil
}

// Check reports whether the supplied credential pair matches.
func (c AdminCreds) Check(username, password string) bool {
	if username != c.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil
}
