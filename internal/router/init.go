package router

import (
	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/container"
	pginfra "github.com/oksasatya/devconnector-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
	"github.com/oksasatya/devconnector-api/internal/router/modules"
)

// InitModules builds the feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	profileRepo := pginfra.NewProfileRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetRabbitPub(),
		logger,
		cfg.MailSendEnabled,
	)
	profileSvc := application.NewProfileService(
		profileRepo,
		logger,
		container.GetES(),
		cfg.ESProfilesIndex,
	)
	githubSvc := application.NewGithubService(
		container.GetGithub(),
		container.GetRedis(),
		cfg.GithubCacheTTL,
		logger,
	)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), container.GetJWT()))
	r.Add(modules.NewGithubModule(handlers.NewGithubHandler(githubSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
