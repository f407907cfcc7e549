package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the access tokens used by the admin/HR routes.
// Login and session management belong to the auth collaborator; this package
// only needs to mint and verify compatible tokens.
type Service interface {
	GenerateAccessToken(userID string, role string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken implements Service.
func (j *JWTService) GenerateAccessToken(userID string, role string) (string, int64, error) {
	duration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, fmt.Errorf("invalid access token expiration time: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(duration)

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode access token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}
