package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	GenerateAccessTokenWithTTL(subject string, ttl time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessTokenWithTTL falls back to the configured expiration when ttl is not positive.
func (j *JWTService) GenerateAccessTokenWithTTL(subject string, ttl time.Duration) (token string, expiresAt int64, err error) {
	if ttl <= 0 {
		ttl = j.accessTokenExpirationTime
	}
	now := time.Now()
	expiresAt = now.Add(ttl).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": TokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}
