package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the admin session token payload. The role claim is what the
// capability-check middleware gates on; there are no user accounts.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminSessionTTL bounds how long an admin login stays valid.
const AdminSessionTTL = 2 * time.Hour

func getSessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		panic("FATAL: SESSION_SECRET environment variable is not set. Refusing to start with an insecure configuration.")
	}
	return secret
}

// GenerateAdminToken issues a signed, expiring token carrying the admin
// role claim.
func GenerateAdminToken() (string, error) {
	secret := getSessionSecret()

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AdminSessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "vintagevault-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	secret := getSessionSecret()

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
