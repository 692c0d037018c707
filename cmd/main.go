package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/config"
	"github.com/lshigami/Ocelots/database"
	"github.com/lshigami/Ocelots/internal/controller"
	"github.com/lshigami/Ocelots/internal/logger"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/lshigami/Ocelots/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Survey API
// @version 1.0
// @description Survey-taking backend: signup, questions with ordered choices, answer submission, and image management.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewFileStore,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewAnswerRepository,
			repository.NewImageRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewUserService,
			service.NewQuestionService,
			service.NewChoiceService,
			// AnswerService needs *gorm.DB for the batch-submit transaction
			func(answerRepo repository.AnswerRepository, db *gorm.DB) service.AnswerService {
				return service.NewAnswerService(answerRepo, db)
			},
			service.NewImageService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewUserController,
			controller.NewQuestionController,
			controller.NewChoiceController,
			controller.NewAnswerController,
			controller.NewImageController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Bridge gin's request log into zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewFileStore(cfg *config.Config) (storage.FileStore, error) {
	return storage.NewLocalStore(cfg.Upload.Dir)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userCtrl *controller.UserController,
	questionCtrl *controller.QuestionController,
	choiceCtrl *controller.ChoiceController,
	answerCtrl *controller.AnswerController,
	imageCtrl *controller.ImageController,
) {
	// Uploaded files are served back under the same path the stored URLs use
	router.Static("/static/uploads", cfg.Upload.Dir)

	router.GET("/", userCtrl.Connect)
	router.POST("/signup", userCtrl.Signup)

	router.GET("/questions/count", questionCtrl.CountQuestions)
	router.GET("/questions/:sqe", questionCtrl.GetQuestion)
	router.POST("/questions", questionCtrl.CreateQuestion)
	router.POST("/question", questionCtrl.CreateQuestion) // legacy alias

	router.GET("/choices/question/:question_id", choiceCtrl.ListByQuestion)
	router.POST("/choices", choiceCtrl.CreateChoice)
	router.POST("/choices/choice", choiceCtrl.CreateChoice) // legacy alias

	router.POST("/answers", answerCtrl.CreateAnswer)
	router.POST("/submit", answerCtrl.SubmitAnswers)
	router.GET("/answers", answerCtrl.ListAnswers)
	router.GET("/answers/user/:user_id", answerCtrl.ListAnswersByUser)

	router.POST("/images/upload", imageCtrl.UploadImage)
	router.POST("/images", imageCtrl.CreateImage)
	router.GET("/images", imageCtrl.ListImages)
	router.GET("/images/type/:type", imageCtrl.ListImagesByType)
	router.GET("/images/main", imageCtrl.GetMainImage)
	router.DELETE("/images/:id", imageCtrl.DeleteImage)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Image{},
		&model.Question{},
		&model.Choice{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
