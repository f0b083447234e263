package app

import (
	"bloom_daily_backend/internal/config"
	"bloom_daily_backend/internal/controller"
	"bloom_daily_backend/internal/middleware"
	"bloom_daily_backend/internal/repository"
	"bloom_daily_backend/internal/service"
	"bloom_daily_backend/pkg/configwatcher"
	"bloom_daily_backend/pkg/database"
	"bloom_daily_backend/pkg/logger"
	"bloom_daily_backend/pkg/monitoring"
	"bloom_daily_backend/pkg/security"
	"bloom_daily_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	DB              *gorm.DB
	identity        *middleware.Identity
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	routine    *repository.RoutineRepository
	routineLog *repository.RoutineLogRepository
	goal       *repository.GoalRepository
	goalLog    *repository.GoalLogRepository
	wish       *repository.WishRepository
}

type services struct {
	user       *service.UserService
	analytics  *service.AnalyticsService
	completion *service.CompletionService
}

type controllers struct {
	user       *controller.UserController
	analytics  *controller.AnalyticsController
	completion *controller.CompletionController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		routine:    repository.NewRoutineRepository(db),
		routineLog: repository.NewRoutineLogRepository(db),
		goal:       repository.NewGoalRepository(db),
		goalLog:    repository.NewGoalLogRepository(db),
		wish:       repository.NewWishRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	loc, err := cfg.App.Location()
	if err != nil {
		logger.Log.Warn("Falling back to local timezone", zap.Error(err))
		loc = time.Local
	}
	return &services{
		user:       service.NewUserService(repos.user),
		analytics:  service.NewAnalyticsService(repos.user, repos.routine, repos.routineLog, repos.goal, repos.goalLog, loc),
		completion: service.NewCompletionService(repos.user, repos.routine, repos.routineLog, repos.goal, repos.goalLog, repos.wish, db, loc),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		user:       controller.NewUserController(s.user),
		analytics:  controller.NewAnalyticsController(s.analytics, s.user, a.Config.App.CompletedLogLimit),
		completion: controller.NewCompletionController(s.completion, s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.RequestLogger())
}

// New 基于已打开的数据库组装路由与各层依赖
func New(cfg *config.Config, db *gorm.DB) *App {
	app := &App{
		Config:   cfg,
		DB:       db,
		identity: middleware.NewIdentity(cfg.App.DefaultUserEmail),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetMode(c.Server.Mode)
	})
	app.RegisterConfigCallback(func(c *config.Config) {
		app.identity.SetDefaultEmail(c.App.DefaultUserEmail)
	})

	return app
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode == "debug")
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	app := New(cfg, db)
	app.ConfigPath = configPath

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if a.ConfigPath != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigPath, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
