package predefine

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ScopeGenerate = "generate"
)

type ApiClaims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

func (r *ApiClaims) HasScope(scope string) bool {
	return slices.Contains(r.Scopes, scope)
}

func NewApiClaims(subject string, scopes []string, ttl time.Duration) *ApiClaims {
	now := time.Now()
	claims := &ApiClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return claims
}

func SignApiClaims(secret string, claims *ApiClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseApiClaims(secret string, token string) (*ApiClaims, error) {
	claims := new(ApiClaims)
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
