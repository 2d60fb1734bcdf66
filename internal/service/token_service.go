package service

import (
	"fmt"
	"time"

	"firefly/internal/config"
	"firefly/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry is fixed for every issued token.
const tokenExpiry = 24 * time.Hour

type TokenService interface {
	Issue(claims models.Document) (string, error)
	Verify(tokenString string) (jwt.MapClaims, error)
}

type tokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

// Issue signs the supplied claims as-is, adding the expiry.
func (s *tokenService) Issue(claims models.Document) (string, error) {
	tokenClaims := jwt.MapClaims{}
	for key, value := range claims {
		tokenClaims[key] = value
	}
	tokenClaims["exp"] = time.Now().Add(tokenExpiry).Unix()
	tokenClaims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)

	tokenString, err := token.SignedString([]byte(s.cfg.AccessTokenSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.AccessTokenSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
