package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

// InitJWT reads the signing secret from the environment. Main calls it
// after godotenv has loaded .env, so a secret supplied there is the one
// used for signing; a package init would run before the .env load and
// lock in the development fallback.
func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback for local runs without a .env
		secret = "CoreTeamDevSecret2024"
	}
	JWTSecret = []byte(secret)
}

func signingSecret() []byte {
	if len(JWTSecret) == 0 {
		InitJWT()
	}
	return JWTSecret
}

// CustomClaims carries the caller identity. Only the email goes into the
// token; the role is resolved fresh from the user table on every gated
// request, so a stale token can never carry a stale role.
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken mints a session token for the given email. It does not
// check that a user with this email exists.
func GenerateToken(email string) (string, error) {
	claims := &CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "CoreTeamPayroll",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
