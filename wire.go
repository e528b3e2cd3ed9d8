//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/environment"
	"github.com/unicsmcr/hs_employees/routers"
	"github.com/unicsmcr/hs_employees/routers/frontend"
	"github.com/unicsmcr/hs_employees/services/rest"
	"github.com/unicsmcr/hs_employees/utils"
	"github.com/unicsmcr/hs_employees/utils/auth"
	"github.com/unicsmcr/hs_employees/utils/latest"
	"github.com/unicsmcr/hs_employees/utils/submissions"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		rest.NewAuthService,
		rest.NewEmployeeService,
		rest.NewClient,
		auth.NewSessionStore,
		latest.NewTracker,
		submissions.NewGuard,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
