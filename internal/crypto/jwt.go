package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-admin"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSubjectMissing = errors.New("token subject is required")
)

// Claims represents the JWT claims for admin access to generation statistics.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// StatsScope grants read access to generation statistics.
const StatsScope = "stats:read"

// GenerateToken creates a signed admin JWT for the given subject.
func GenerateToken(subject, secret string, expiry time.Duration) (string, error) {
	if subject == "" {
		return "", ErrSubjectMissing
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope: StatsScope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Scope != StatsScope {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
