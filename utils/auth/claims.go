package auth

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims is the model for the claims in the session JWT
type Claims struct {
	jwt.StandardClaims
	APIToken    string `json:"api_token"`
	DisplayName string `json:"display_name"`
}
