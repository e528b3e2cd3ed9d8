package main

import (
	"fmt"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_employees/environment"
	"github.com/unicsmcr/hs_employees/routers"
	"github.com/unicsmcr/hs_employees/routers/frontend"
	"go.uber.org/zap"
)

const defaultPort = "8000"

// Server is the HTTP server of the employees client
type Server struct {
	*gin.Engine
	Port   string
	logger *zap.Logger
}

// NewServer creates the gin engine, loads the page templates and mounts the main router
func NewServer(mainRouter routers.MainRouter, env *environment.Env, logger *zap.Logger) Server {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.SetFuncMap(frontend.TemplateFuncs())
	engine.LoadHTMLGlob("templates/*/*.gohtml")

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine: engine,
		Port:   port,
		logger: logger,
	}
}

// Run serves the engine on the server's port, compressing responses where the client allows it
func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.Port)
	s.logger.Info("starting server", zap.String("addr", addr))

	return http.ListenAndServe(addr, gziphandler.GzipHandler(s.Engine))
}
