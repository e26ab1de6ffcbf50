package router

import (
	app "github.com/skillsnap/skillsnap-server/internal/application"
	"github.com/skillsnap/skillsnap-server/internal/container"
	pginfra "github.com/skillsnap/skillsnap-server/internal/infrastructure/postgres"
	handlers "github.com/skillsnap/skillsnap-server/internal/interface/http"
	"github.com/skillsnap/skillsnap-server/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := app.NewUserService(userRepo, jwt, logger)
	authHandler := handlers.NewAuthHandler(userSvc, logger)

	itemRepo := pginfra.NewPortfolioRepository(pool)
	itemSvc := app.NewPortfolioService(itemRepo, logger)
	itemHandler := handlers.NewPortfolioHandler(itemSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewPortfolioModule(itemHandler, jwt))
}
