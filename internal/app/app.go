package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"promptmaster_backend/internal/config"
	"promptmaster_backend/internal/controller"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/service"
	"promptmaster_backend/pkg/configwatcher"
	"promptmaster_backend/pkg/database"
	"promptmaster_backend/pkg/logger"
	"promptmaster_backend/pkg/monitoring"
	"promptmaster_backend/pkg/security"
	"promptmaster_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	scenario    *repository.ScenarioRepository
	attempt     *repository.AttemptRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	checkin     *repository.CheckinRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	scenario    *service.ScenarioService
	ai          *service.AIService
	evaluation  *service.EvaluationService
	achievement *service.AchievementService
	dashboard   *service.DashboardService
	certificate *service.CertificateService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	scenario    *controller.ScenarioController
	achievement *controller.AchievementController
	dashboard   *controller.DashboardController
	certificate *controller.CertificateController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		scenario:    repository.NewScenarioRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		progress:    repository.NewProgressRepository(db),
		achievement: repository.NewAchievementRepository(db),
		checkin:     repository.NewCheckinRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.checkin)
	s.scenario = service.NewScenarioService(repos.scenario, repos.attempt)
	s.ai = service.NewAIService(cfg.AI)
	s.evaluation = service.NewEvaluationService(repos.scenario, repos.attempt, s.user, s.ai, db)
	s.achievement = service.NewAchievementService(repos.achievement, repos.user, repos.attempt, rdb)
	s.dashboard = service.NewDashboardService(repos.user, repos.progress, repos.attempt, s.user)
	s.certificate = service.NewCertificateService(repos.certificate)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		scenario:    controller.NewScenarioController(s.scenario, s.evaluation),
		achievement: controller.NewAchievementController(s.achievement),
		dashboard:   controller.NewDashboardController(s.dashboard),
		certificate: controller.NewCertificateController(s.certificate),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	app.RegisterConfigCallback(func(updated *config.Config) {
		services.ai.UpdateConfig(updated.AI)
		logger.Log.Info("Configuration reloaded", zap.String("aiModel", updated.AI.Model))
	})

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("promptmaster", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		for _, callback := range app.configCallbacks {
			callback(updated)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exited")
}
