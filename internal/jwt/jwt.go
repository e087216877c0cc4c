package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

// Claims is what the forum keeps inside a token.
type Claims struct {
	UserId   string
	Username string
}

type JwtService interface {
	NewToken(claims Claims) (string, error)
	DecodeToken(jwtStr string) (Claims, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

// New creates a HS256 token service. A ttl <= 0 issues tokens without an
// expiry, which is how refresh tokens are minted.
func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(c Claims) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = c.UserId
	claims["username"] = c.Username
	claims["iat"] = time.Now().Unix()
	if j.ttl > 0 {
		claims["exp"] = time.Now().Add(j.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (Claims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return Claims{}, &internal_errors.AuthenticationError{Message: "Invalid token"}
	}
	if !token.Valid {
		return Claims{}, &internal_errors.AuthenticationError{Message: "Invalid token"}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, &internal_errors.AuthenticationError{Message: "Invalid token claims"}
	}
	id, _ := mapClaims["id"].(string)
	username, _ := mapClaims["username"].(string)
	if id == "" {
		return Claims{}, &internal_errors.AuthenticationError{Message: "Invalid token claims"}
	}
	return Claims{UserId: id, Username: username}, nil
}

// GenerateKey returns a random 256-bit HMAC key, base64 encoded.
func GenerateKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
