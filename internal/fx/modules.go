package fx

import (
	"agent-dashboard/internal/auth"
	"agent-dashboard/internal/config"
	"agent-dashboard/internal/localstore"
	"agent-dashboard/internal/logger"
	"agent-dashboard/internal/server"
	"agent-dashboard/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(localstore.New),
	// domain
	fx.Provide(service.New),
	fx.Provide(auth.NewManager),
	// http
	fx.Provide(server.New),
)
