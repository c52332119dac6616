package app

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/controller"
	"assessment_backend/internal/middleware"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/configwatcher"
	"assessment_backend/pkg/database"
	"assessment_backend/pkg/logger"
	"assessment_backend/pkg/monitoring"
	"assessment_backend/pkg/security"
	"assessment_backend/pkg/tracing"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	// ConfigDir 非空时启动配置热更新
	ConfigDir string

	origins         *security.OriginList
	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	presentation *repository.PresentationRepository
	assessment   *repository.AssessmentRepository
	evaluation   *repository.EvaluationRepository
	analytics    *repository.AnalyticsRepository
	teacher      *repository.TeacherRepository
	student      *repository.StudentRepository
}

type services struct {
	presentation *service.PresentationService
	assessment   *service.AssessmentService
	evaluation   *service.EvaluationService
	analytics    *service.AnalyticsService
	auth         *service.AuthService
	student      *service.StudentService
	storage      *service.StorageService
	export       *service.ExportService
}

type controllers struct {
	presentation *controller.PresentationController
	assessment   *controller.AssessmentController
	evaluation   *controller.EvaluationController
	analytics    *controller.AnalyticsController
	auth         *controller.AuthController
	student      *controller.StudentController
	export       *controller.ExportController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 依次执行已注册的配置回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		presentation: repository.NewPresentationRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		evaluation:   repository.NewEvaluationRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
		teacher:      repository.NewTeacherRepository(db),
		student:      repository.NewStudentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	// 未启用 Redis 时分析结果不缓存
	var cache service.AnalyticsCacheStore
	if rdb != nil {
		cache = repository.NewAnalyticsCache(rdb, cfg.Analytics.CacheTTL)
	}

	s := &services{}
	s.presentation = service.NewPresentationService(repos.presentation, cfg.Presentation.AtomicCreate, cfg.Location())
	s.assessment = service.NewAssessmentService(repos.assessment)
	s.evaluation = service.NewEvaluationService(repos.evaluation, cache)
	s.analytics = service.NewAnalyticsService(repos.analytics, cache)
	s.auth = service.NewAuthService(repos.teacher)
	s.student = service.NewStudentService(repos.student)
	s.storage = service.NewStorageService(cfg)
	s.export = service.NewExportService(repos.presentation, repos.evaluation, s.storage)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		presentation: controller.NewPresentationController(s.presentation),
		assessment:   controller.NewAssessmentController(s.assessment),
		evaluation:   controller.NewEvaluationController(s.evaluation),
		analytics:    controller.NewAnalyticsController(s.analytics),
		auth:         controller.NewAuthController(s.auth),
		student:      controller.NewStudentController(s.student),
		export:       controller.NewExportController(s.export),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用已建立的连接组装应用，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		origins: security.NewOriginList(cfg.CORS.AllowedOrigins),
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg, rdb)
	ctrls := app.initControllers(svcs, db)

	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.origins.Update(c.CORS.AllowedOrigins)
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("level", logger.Level().String()))

	migrate := cfg.ForceMigrate || cfg.Server.Mode == gin.DebugMode
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// 缓存不可用时继续提供服务
			logger.Log.Error("Failed to initialize redis, analytics cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := New(cfg, db, rdb)
	app.ConfigDir = "configs"

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.ConfigDir != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigDir, a.ApplyConfig); err != nil {
				logger.Log.Warn("Config watcher not started", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	// 等待进行中的请求结束（最多5秒）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close 释放数据库、Redis 与追踪资源
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
