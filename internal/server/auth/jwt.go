// Package auth issues and verifies the stateless session tokens handed to API
// clients. Tokens are HS256 JWTs; there is no server-side revocation list.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenService(secret string, validity time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), validity: validity, now: time.Now}
}

// Issue signs a token for the given identity, valid from now for the
// configured duration.
func (s *TokenService) Issue(userID, username, email, role string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature and expiry. It returns common.ErrTokenMissing for an
// empty string, common.ErrTokenExpired past expiry and common.ErrInvalidToken
// for anything else that fails.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, common.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
