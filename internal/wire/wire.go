package wire

import (
	"Pulseboard/internal/api"
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/pkg/mailer"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	dailyMetricRepo := repository.NewDailyMetricRepository(db)

	mailClient := mailer.New(cfg.Auth)

	authService := service.NewAuthService(userRepo, mailClient)
	postService := service.NewPostService(postRepo)
	analyticsService := service.NewAnalyticsService(postRepo)
	dailyMetricService := service.NewDailyMetricService(dailyMetricRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:        handler.NewAuthHandler(authService),
		PostHandler:        handler.NewPostHandler(postService),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
		DailyMetricHandler: handler.NewDailyMetricHandler(dailyMetricService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
