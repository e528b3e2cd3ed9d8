package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unicsmcr/hs_employees/routers/api/models"
	"github.com/unicsmcr/hs_employees/routers/frontend"
	"github.com/unicsmcr/hs_employees/static"
	"go.uber.org/zap"
)

// MainRouter is the router mounting every other router of the server
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers all of the app's routes
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("heartbeat", r.Heartbeat)
	routerGroup.GET("metrics", gin.WrapH(promhttp.Handler()))
	routerGroup.GET("assets/*filepath", gin.WrapH(static.Handler()))

	frontendGroup := routerGroup.Group("/")
	r.frontendRouter.RegisterRoutes(frontendGroup)
}
