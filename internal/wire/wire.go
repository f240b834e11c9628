package wire

import (
	"Clipsight/internal/api"
	"Clipsight/internal/api/config"
	"Clipsight/internal/api/handler"
	"Clipsight/internal/job"
	"Clipsight/internal/pkg/cron"
	"Clipsight/internal/pkg/tiktok"
	"Clipsight/internal/repository"
	"Clipsight/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	credRepo := repository.NewCredentialRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	userRepo := repository.NewUserRepo(db)

	tiktokClient := tiktok.NewClient(cfg.TikTok)

	tokenService := service.NewTokenService(credRepo, tiktokClient)
	analyticsService := service.NewAnalyticsService(tokenService, tiktokClient, snapshotRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, tokenService, tiktokClient)
	settingsService := service.NewSettingsService(settingsRepo, tokenService)
	userService := service.NewUserService(userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		TikTokHandler:    handler.NewTikTokHandler(tokenService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		SnapshotHandler:  handler.NewSnapshotHandler(snapshotService),
		SettingsHandler:  handler.NewSettingsHandler(settingsService),
		AgentHandler:     handler.NewAgentHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewSnapshotJob(snapshotService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
