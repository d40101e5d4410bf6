package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// CustomClaims is the token payload: subject carries the user id, phone and
// role ride alongside. The role claim is what clients read (unverified) for
// routing; the server always re-parses with signature verification.
type CustomClaims struct {
	Phone string       `json:"phone"`
	Role  laundry.Role `json:"role"`
	jwt.RegisteredClaims
}

const tokenLifetime = 30 * 24 * time.Hour

var (
	ErrSecretMissing = errors.New("JWT_SECRET is not set")
	ErrInvalidToken  = errors.New("invalid token")
)

func secretKey() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrSecretMissing
	}
	return []byte(secret), nil
}

// GenerateJWT issues a signed HS256 token for the user.
func GenerateJWT(userID string, phone string, role laundry.Role) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}

	claims := CustomClaims{
		Phone: phone,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseJWT verifies the signature and returns the claims.
func ParseJWT(tokenStr string) (*CustomClaims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return key, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractAccessToken pulls the bearer token from the request: cookie first,
// Authorization header as fallback.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
