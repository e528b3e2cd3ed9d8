package frontend

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/routers/api/models"
	"github.com/unicsmcr/hs_employees/services"
	"github.com/unicsmcr/hs_employees/static"
	"github.com/unicsmcr/hs_employees/utils/auth"
	"github.com/unicsmcr/hs_employees/utils/latest"
	"github.com/unicsmcr/hs_employees/utils/submissions"
	"go.uber.org/zap"
)

// Router serves the server-rendered pages of the employees client
type Router interface {
	models.Router
	WelcomePage(*gin.Context)
	LoginPage(*gin.Context)
	Login(*gin.Context)
	SignupPage(*gin.Context)
	Signup(*gin.Context)
	Logout(*gin.Context)
	Dashboard(*gin.Context)
	DeleteEmployee(*gin.Context)
	CreateEmployeePage(*gin.Context)
	CreateEmployee(*gin.Context)
	EditEmployeePage(*gin.Context)
	EditEmployee(*gin.Context)
}

type templateDataModel struct {
	Cfg         *config.AppConfig
	DisplayName string
	Notices     []notice
	Refresh     *pageRefresh
	Data        interface{}
}

// pageRefresh makes the browser navigate to URL after the given number of seconds
type pageRefresh struct {
	After int
	URL   string
}

type frontendRouter struct {
	models.BaseRouter
	logger          *zap.Logger
	cfg             *config.AppConfig
	sessionStore    auth.SessionStore
	authService     services.AuthService
	employeeService services.EmployeeService
	tracker         *latest.Tracker
	guard           *submissions.Guard
	validate        *validator.Validate
	rateLimiter     gin.HandlerFunc
}

// NewRouter creates the frontend router
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, sessionStore auth.SessionStore, authService services.AuthService,
	employeeService services.EmployeeService, tracker *latest.Tracker, guard *submissions.Guard) (Router, error) {
	r := &frontendRouter{
		logger:          logger,
		cfg:             cfg,
		sessionStore:    sessionStore,
		authService:     authService,
		employeeService: employeeService,
		tracker:         tracker,
		guard:           guard,
		validate:        newValidator(),
	}

	rateLimiter, err := r.newRateLimiter()
	if err != nil {
		return nil, err
	}
	r.rateLimiter = rateLimiter

	return r, nil
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.WelcomePage)
	routerGroup.GET("login", r.LoginPage)
	routerGroup.POST("login", r.rateLimiter, r.Login)
	routerGroup.GET("signup", r.SignupPage)
	routerGroup.POST("signup", r.rateLimiter, r.Signup)
	routerGroup.GET("logout", r.Logout)

	protected := routerGroup.Group("", r.requireSession)
	protected.GET("dashboard", r.Dashboard)
	protected.POST("dashboard/delete/:id", r.DeleteEmployee)
	protected.GET("create-employee", r.CreateEmployeePage)
	protected.POST("create-employee", r.CreateEmployee)
	protected.GET("edit-employee/:id", r.EditEmployeePage)
	protected.POST("edit-employee/:id", r.EditEmployee)
}

// TemplateFuncs are the functions available to the frontend templates
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"asset": static.Path,
		"hasImage": func(image *entities.ImageResource) bool {
			return !image.IsEmpty()
		},
		// data URIs are only trusted by html/template when typed as template.URL
		"imageSrc": func(image *entities.ImageResource) template.URL {
			if image.IsEmpty() {
				return ""
			}
			return template.URL(image.DataURI())
		},
	}
}

// render renders the given template, together with the flashed notice and any notices passed in
func (r *frontendRouter) render(ctx *gin.Context, status int, templateName string, data interface{}, notices ...notice) {
	r.renderPage(ctx, status, templateName, templateDataModel{Data: data}, notices...)
}

func (r *frontendRouter) renderPage(ctx *gin.Context, status int, templateName string, model templateDataModel, notices ...notice) {
	model.Cfg = r.cfg
	if flash := useFlash(ctx); flash != nil {
		model.Notices = append(model.Notices, *flash)
	}
	model.Notices = append(model.Notices, notices...)
	if session := sessionFromCtx(ctx); session != nil {
		model.DisplayName = session.DisplayName
	}

	ctx.HTML(status, templateName, model)
}

func (r *frontendRouter) newRateLimiter() (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(r.cfg.Auth.RateLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid auth rate limit %q", r.cfg.Auth.RateLimit)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate),
		mgin.WithLimitReachedHandler(r.rateLimitReached)), nil
}

func (r *frontendRouter) rateLimitReached(ctx *gin.Context) {
	r.logger.Warn("auth rate limit reached", zap.String("ip", ctx.ClientIP()), zap.String("path", ctx.Request.URL.Path))

	templateName := loginTemplate
	if ctx.FullPath() == "/signup" {
		templateName = signupTemplate
	}
	r.render(ctx, http.StatusTooManyRequests, templateName, authFormDataModel{
		Username: ctx.PostForm(usernameField),
	}, errorNotice("too many attempts, please try again later"))
	ctx.Abort()
}
