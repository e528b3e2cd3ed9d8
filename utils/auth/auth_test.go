package auth

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_employees/entities"
)

func Test_NewJWT__should_throw_error_when_secret_empty(t *testing.T) {
	_, err := NewJWT(entities.Session{}, 100, []byte{})
	assert.Error(t, err)
}

func Test_NewJWT__should_return_correct_JWT(t *testing.T) {
	testSession := entities.Session{Token: "api-token", DisplayName: "Bob"}
	testSecret := []byte(`test_secret`)

	expectedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt: 100,
		},
		APIToken:    "api-token",
		DisplayName: "Bob",
	}).SignedString(testSecret)
	assert.NoError(t, err)

	actualToken, err := NewJWT(testSession, 100, testSecret)
	assert.NoError(t, err)

	assert.Equal(t, expectedToken, actualToken)
}

func Test_GetJWTClaims__should_return_correct_claims_for_valid_JWT(t *testing.T) {
	testSecret := []byte(`test_secret`)

	token, err := NewJWT(entities.Session{Token: "api-token", DisplayName: "Bob"}, 101, testSecret)
	assert.NoError(t, err)

	claims := GetJWTClaims(token, testSecret)
	assert.NotNil(t, claims)

	assert.Equal(t, "api-token", claims.APIToken)
	assert.Equal(t, "Bob", claims.DisplayName)
	assert.Equal(t, int64(101), claims.IssuedAt)
}

func Test_GetJWTClaims__should_return_nil_for_JWT_signed_with_other_secret(t *testing.T) {
	token, err := NewJWT(entities.Session{Token: "api-token"}, 101, []byte(`other_secret`))
	assert.NoError(t, err)

	assert.Nil(t, GetJWTClaims(token, []byte(`test_secret`)))
}

func Test_GetJWTClaims__should_return_nil_for_malformed_JWT(t *testing.T) {
	assert.Nil(t, GetJWTClaims("not.a.jwt", []byte(`test_secret`)))
}

func Test_GetJWTClaims__should_return_nil_for_unsigned_JWT(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{APIToken: "api-token"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	assert.Nil(t, GetJWTClaims(token, []byte(`test_secret`)))
}
