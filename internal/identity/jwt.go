package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// Claims are the token claims carried for an owner.
type Claims struct {
	OwnerID string `json:"owner_id"`
	jwt.RegisteredClaims
}

// JWTService validates and mints HMAC bearer tokens. The external identity
// provider signs with the same key; this side only needs Validate, Generate
// exists for tests and local development.
type JWTService struct {
	signingKey []byte
	issuer     string
}

func NewJWTService(signingKey, issuer string) *JWTService {
	return &JWTService{signingKey: []byte(signingKey), issuer: issuer}
}

func (s *JWTService) GenerateToken(ownerID string, expiresIn time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// ValidateToken parses the token and returns its claims. All failures map to
// NotAuthenticated; the caller cannot do anything more specific with them.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeNotAuthenticated, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeNotAuthenticated, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeNotAuthenticated, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.OwnerID == "" {
		return nil, dErrors.New(dErrors.CodeNotAuthenticated, "invalid token claims")
	}
	return claims, nil
}
