package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey and JwtTTL are set once from the config during startup.
var (
	JwtKey []byte
	JwtTTL = 24 * time.Hour
)

// Claims represents the JWT claims
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a JWT token for a user
func GenerateJWT(email, role string) (string, error) {
	expirationTime := time.Now().Add(JwtTTL)
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
