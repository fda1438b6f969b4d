// Package auth implements token issuing and credential verification for the
// ledger server: HS256 JWTs for sessions and Argon2id hashes for passwords.
package auth

import (
	"errors"
	"time"

	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the fields identity-bound
// encryption needs on the client side: the author's handle and payment address.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string `json:"userId"`
	Handle         string `json:"handle"`
	PaymentAddress string `json:"paymentAddress"`
}

// GenerateToken mints a signed HS256 access token for the given user.
func GenerateToken(userID, handle, paymentAddress string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:         userID,
		Handle:         handle,
		PaymentAddress: paymentAddress,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns its
// claims. Expired tokens yield common.ErrTokenExpired, any other validation
// failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
