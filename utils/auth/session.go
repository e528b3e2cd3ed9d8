package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/environment"
)

// CookieName is the name of the cookie holding the session
const CookieName = "Authorization"

// ErrNoSession is returned when the request carries no readable session
var ErrNoSession = errors.New("no session found")

// SessionStore persists the signed-in user's session for the lifetime of the browser session
type SessionStore interface {
	Set(ctx *gin.Context, session entities.Session) error
	Get(ctx *gin.Context) (*entities.Session, error)
	Clear(ctx *gin.Context)
}

type cookieSessionStore struct {
	secret []byte
	secure bool
}

// NewSessionStore creates a SessionStore which keeps the session in a signed cookie
func NewSessionStore(cfg *config.AppConfig, env *environment.Env) (SessionStore, error) {
	secret := env.Get(environment.SessionSecret)
	if secret == "" {
		return nil, errors.Errorf("%s must be set", environment.SessionSecret)
	}

	return &cookieSessionStore{
		secret: []byte(secret),
		secure: cfg.Auth.SessionCookieSecure,
	}, nil
}

func (s *cookieSessionStore) Set(ctx *gin.Context, session entities.Session) error {
	token, err := NewJWT(session, time.Now().Unix(), s.secret)
	if err != nil {
		return errors.Wrap(err, "could not sign session")
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	// max age 0 makes it a browser session cookie
	ctx.SetCookie(CookieName, token, 0, "/", "", s.secure, true)
	return nil
}

func (s *cookieSessionStore) Get(ctx *gin.Context) (*entities.Session, error) {
	token, err := ctx.Cookie(CookieName)
	if err != nil || token == "" {
		return nil, ErrNoSession
	}

	claims := GetJWTClaims(token, s.secret)
	if claims == nil || claims.APIToken == "" {
		return nil, ErrNoSession
	}

	return &entities.Session{
		Token:       claims.APIToken,
		DisplayName: claims.DisplayName,
	}, nil
}

func (s *cookieSessionStore) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
