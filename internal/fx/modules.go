package fx

import (
	"arcade-royale/internal/config"
	"arcade-royale/internal/database"
	"arcade-royale/internal/logger"
	"arcade-royale/internal/repository"
	"arcade-royale/internal/server"
	"arcade-royale/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewScoreRepository),
	// svc
	fx.Provide(service.NewScoreService),
	fx.Provide(service.NewLeaderboardService),
	fx.Provide(service.NewCatalogService),
	// server
	fx.Provide(server.New),
)
