// Package auth implements the credential primitives of the server: the JWT
// session token codec and bcrypt password hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/server/models"
)

// Claims carries the identity fields the access gate needs to reconstruct a
// request identity without a database round trip, plus the registered
// expiry/issue timestamps.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

// GenerateToken signs a session token (HS256) for the given account fields,
// expiring validityDuration from now. It fails only if the secret is unusable,
// which is a configuration error rather than a per-request condition.
func GenerateToken(userID, email string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a session token and returns
// its claims. Malformed encoding, signature mismatch and expiry all collapse
// to common.ErrInvalidToken: callers must not be able to distinguish them.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
