package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/staffloop/hr-portal-go/internal/domain/auth"
	"github.com/staffloop/hr-portal-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(u user.User) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":   u.ID,
		"email":     u.Email,
		"full_name": u.FullName,
		"role":      string(u.Role),
		"type":      "access",
		"exp":       expiresAt,
	})
	return tokenString, expiresAt, err
}

// ActorFromClaims resolves the authenticated caller out of verified JWT
// claims. Fails closed: missing or malformed claims yield an error, never a
// zero-role actor.
func ActorFromClaims(claims map[string]interface{}) (auth.Actor, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Actor{}, auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).IsValid() {
		return auth.Actor{}, auth.ErrInvalidToken
	}
	fullName, _ := claims["full_name"].(string)

	return auth.Actor{
		UserID:   userID,
		FullName: fullName,
		Role:     user.Role(roleStr),
	}, nil
}
