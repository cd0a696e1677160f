package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/cmd/fx/account_fx"
	"vibecheck/cmd/fx/ai_fx"
	"vibecheck/cmd/fx/burnout_fx"
	"vibecheck/cmd/fx/db_fx"
	"vibecheck/cmd/fx/health_fx"
	"vibecheck/cmd/fx/sentiment_fx"
	"vibecheck/cmd/fx/vibelog_fx"
	"vibecheck/internal/api/controllers"
	"vibecheck/internal/infra"
	"vibecheck/pkg/middleware"
	"vibecheck/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		sentiment_fx.Module,
		vibelog_fx.Module,
		burnout_fx.Module,
		health_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, aiClient utils.SentimentClientInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := aiClient.Close(); err != nil {
				log.Printf("Failed to close sentiment client: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	sentimentController *controllers.SentimentRatingController,
	vibeLogController *controllers.VibeLogController,
	burnoutController *controllers.BurnoutScoreController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, sentimentController, vibeLogController, burnoutController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	sentimentController *controllers.SentimentRatingController,
	vibeLogController *controllers.VibeLogController,
	burnoutController *controllers.BurnoutScoreController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")

	api.GET("/health", healthController.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	sentimentGroup := api.Group("/sentiment-ratings")
	sentimentGroup.Use(middleware.JWTAuthMiddleware())
	sentimentGroup.POST("/analyze", sentimentController.Analyze)
	sentimentGroup.POST("/analyze-only", sentimentController.AnalyzeOnly)
	sentimentGroup.POST("/batch", sentimentController.BatchAnalyze)
	sentimentGroup.GET("/availability", sentimentController.Availability)
	sentimentGroup.GET("/user/:userId", sentimentController.ListByUser)
	sentimentGroup.GET("/user/:userId/stats", sentimentController.StatsByUser)
	sentimentGroup.GET("/:id", sentimentController.GetByID)
	sentimentGroup.DELETE("/:id", sentimentController.Delete)

	vibeLogGroup := api.Group("/vibe-logs")
	vibeLogGroup.Use(middleware.JWTAuthMiddleware())
	vibeLogGroup.POST("", vibeLogController.Create)
	vibeLogGroup.GET("", vibeLogController.List)
	vibeLogGroup.GET("/:id", vibeLogController.GetByID)
	vibeLogGroup.PUT("/:id", vibeLogController.Update)
	vibeLogGroup.DELETE("/:id", vibeLogController.Delete)

	burnoutGroup := api.Group("/burnout-scores")
	burnoutGroup.Use(middleware.JWTAuthMiddleware(), middleware.SuperuserMiddleware())
	burnoutGroup.POST("", burnoutController.Create)
	burnoutGroup.GET("", burnoutController.List)
	burnoutGroup.DELETE("/:id", burnoutController.Delete)
}
