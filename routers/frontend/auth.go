package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/services"
	"go.uber.org/zap"
)

const (
	welcomeTemplate = "welcome.gohtml"
	loginTemplate   = "login.gohtml"
	signupTemplate  = "signup.gohtml"

	usernameField = "f_userName"
	passwordField = "f_Pwd"
)

type authFormDataModel struct {
	Username string
}

type authReq struct {
	Username string `form:"f_userName" validate:"required"`
	Password string `form:"f_Pwd" validate:"required"`
}

func (r *frontendRouter) WelcomePage(ctx *gin.Context) {
	if session, err := r.sessionStore.Get(ctx); err == nil {
		ctx.Set(sessionCtxKey, session)
	}
	r.render(ctx, http.StatusOK, welcomeTemplate, nil)
}

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	r.render(ctx, http.StatusOK, loginTemplate, authFormDataModel{})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	var req authReq
	if err := r.bindAuthReq(ctx, &req); err != nil {
		r.logger.Warn("invalid login request", zap.Error(err))
		r.render(ctx, http.StatusBadRequest, loginTemplate, authFormDataModel{Username: req.Username},
			errorNotice("username and password are required"))
		return
	}

	session, err := r.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrUnauthorized, services.ErrRejected, services.ErrNotFound:
			r.logger.Warn("login rejected", zap.String("username", req.Username), zap.Error(err))
			r.render(ctx, http.StatusUnauthorized, loginTemplate, authFormDataModel{Username: req.Username},
				errorNotice("invalid username or password"))
		default:
			r.logger.Error("could not log in", zap.String("username", req.Username), zap.Error(err))
			r.render(ctx, http.StatusInternalServerError, loginTemplate, authFormDataModel{Username: req.Username},
				errorNotice("something went wrong"))
		}
		return
	}

	err = r.sessionStore.Set(ctx, *session)
	if err != nil {
		r.logger.Error("could not store session", zap.String("username", req.Username), zap.Error(err))
		r.render(ctx, http.StatusInternalServerError, loginTemplate, authFormDataModel{Username: req.Username},
			errorNotice("something went wrong"))
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (r *frontendRouter) SignupPage(ctx *gin.Context) {
	r.render(ctx, http.StatusOK, signupTemplate, authFormDataModel{})
}

func (r *frontendRouter) Signup(ctx *gin.Context) {
	var req authReq
	if err := r.bindAuthReq(ctx, &req); err != nil {
		r.logger.Warn("invalid signup request", zap.Error(err))
		r.render(ctx, http.StatusBadRequest, signupTemplate, authFormDataModel{Username: req.Username},
			errorNotice("username and password are required"))
		return
	}

	err := r.authService.Signup(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrRejected, services.ErrUnauthorized, services.ErrNotFound:
			r.logger.Warn("signup rejected", zap.String("username", req.Username), zap.Error(err))
			r.render(ctx, http.StatusBadRequest, signupTemplate, authFormDataModel{Username: req.Username},
				errorNotice("username already exists"))
		default:
			r.logger.Error("could not sign up", zap.String("username", req.Username), zap.Error(err))
			r.render(ctx, http.StatusInternalServerError, signupTemplate, authFormDataModel{Username: req.Username},
				errorNotice("something went wrong"))
		}
		return
	}

	setFlash(ctx, successNotice("Account created, please log in"))
	ctx.Redirect(http.StatusSeeOther, "/login")
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	r.sessionStore.Clear(ctx)
	setFlash(ctx, successNotice("You have been logged out"))
	ctx.Redirect(http.StatusSeeOther, "/login")
}

func (r *frontendRouter) bindAuthReq(ctx *gin.Context, req *authReq) error {
	if err := ctx.ShouldBind(req); err != nil {
		return errors.Wrap(err, "could not read form")
	}
	return r.validate.Struct(req)
}
