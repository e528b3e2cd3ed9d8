package auth

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
)

// NewJWT creates a new JWT token holding the given session, signed with the specified secret
func NewJWT(session entities.Session, timestamp int64, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT token secret undefined")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt: timestamp,
		},
		APIToken:    session.Token,
		DisplayName: session.DisplayName,
	})

	return token.SignedString(secret)
}

// GetJWTClaims returns the claims of the given JWT if it was signed with the given secret, nil otherwise
func GetJWTClaims(token string, secret []byte) *Claims {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	return claims
}
