package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_employees/entities"
	"go.uber.org/zap"
)

const (
	sessionCtxKey = "session"

	noSessionMessage      = "No token found, please log in"
	sessionExpiredMessage = "Your session is no longer valid, please log in again"
)

// requireSession lets the request through only when it carries a session.
// The session is looked up on every request
func (r *frontendRouter) requireSession(ctx *gin.Context) {
	session, err := r.sessionStore.Get(ctx)
	if err != nil {
		r.logger.Debug("request without session", zap.String("path", ctx.Request.URL.Path))
		r.redirectToLogin(ctx, noSessionMessage)
		return
	}

	ctx.Set(sessionCtxKey, session)
	ctx.Next()
}

func (r *frontendRouter) redirectToLogin(ctx *gin.Context, message string) {
	setFlash(ctx, infoNotice(message))
	ctx.Redirect(http.StatusSeeOther, "/login")
	ctx.Abort()
}

func sessionFromCtx(ctx *gin.Context) *entities.Session {
	value, exists := ctx.Get(sessionCtxKey)
	if !exists {
		return nil
	}
	session, _ := value.(*entities.Session)
	return session
}
