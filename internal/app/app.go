package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_catalog_backend/internal/config"
	"course_catalog_backend/internal/controller"
	"course_catalog_backend/internal/repository"
	"course_catalog_backend/internal/service"
	"course_catalog_backend/pkg/database"
	"course_catalog_backend/pkg/logger"
	"course_catalog_backend/pkg/monitoring"
	"course_catalog_backend/pkg/security"
	"course_catalog_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  repository.Storage
	DB     *gorm.DB // nil on the in-memory backend

	tracerProvider *sdktrace.TracerProvider
}

type services struct {
	course     *service.CourseService
	instructor *service.InstructorService
	catalog    *service.CatalogService
	enrollment *service.EnrollmentService
}

type controllers struct {
	course     *controller.CourseController
	instructor *controller.InstructorController
	catalog    *controller.CatalogController
	enrollment *controller.EnrollmentController
	health     *controller.HealthController
}

func (a *App) initServices(store repository.Storage) *services {
	return &services{
		course:     service.NewCourseService(store),
		instructor: service.NewInstructorService(store),
		catalog:    service.NewCatalogService(store),
		enrollment: service.NewEnrollmentService(store),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		course:     controller.NewCourseController(s.course),
		instructor: controller.NewInstructorController(s.instructor),
		catalog:    controller.NewCatalogController(s.catalog),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
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
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	// The entity store is initialized once here and injected into every
	// service; there is no reinitialization mid-run.
	switch cfg.Storage.Type {
	case config.StorageDatabase:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
		app.DB = db
		app.Store = repository.NewGormStorage(db)
	default:
		app.Store = repository.NewMemStorage()
	}

	if err := database.Seed(app.Store); err != nil {
		logger.Log.Fatal("Failed to seed catalog data", zap.Error(err))
	}

	services := app.initServices(app.Store)
	controllers := app.initControllers(services, app.DB)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-catalog", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

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
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
