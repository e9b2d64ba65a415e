package app

import (
	"database/sql"
	"net/http"

	"go-empmgmt/internal/config"
	"go-empmgmt/internal/course"
	"go-empmgmt/internal/employee"
	"go-empmgmt/internal/messaging/kafka"
	"go-empmgmt/internal/metrics"
	"go-empmgmt/internal/middleware"
	"go-empmgmt/internal/promotion"
	"go-empmgmt/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	opsRateLimit = 5
	opsRateBurst = 10
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	reg prometheus.Registerer,
	logger *zap.Logger,
) error {
	obligatoryIDs, err := course.ParseCourseIDs(cfg.ObligatoryCourseIDs)
	if err != nil {
		return err
	}

	// --- Repositories ---
	courseRepo := course.NewCachedRepository(course.NewRepository(gormDB), rdb, cfg.CourseCacheTTL, logger)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC ---
	enforcer, err := rbac.NewEnforcer(nil)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	promotionClient := promotion.NewClient(
		&http.Client{Timeout: cfg.PromotionTimeout},
		cfg.PromotionEndpoint,
		cfg.PromotionTimeout,
		employeeRepo,
		logger,
	)

	employeeService := employee.NewService(employee.Dependencies{
		Repo:       employeeRepo,
		Courses:    courseRepo,
		Obligatory: course.NewObligatoryPolicy(courseRepo, obligatoryIDs),
		Factory:    employee.NewFactory(),
		Raises:     employee.NewRaisePolicy(cfg.MinimumRaise),
		Promoter:   promotionClient,
		Metrics:    metrics.NewMetrics(reg),
	}, logger)
	employeeService.SubscribeAbsence(employee.NewOutboxAbsenceHandler(outboxRepo, logger))

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	registerOpsRoutes(router, db, promhttp.Handler())

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, cfg.JWTSecret, logger)
	}

	return nil
}

// registerOpsRoutes mounts the unauthenticated health and metrics endpoints
// behind a per-IP limit.
func registerOpsRoutes(router *gin.Engine, db *sql.DB, metricsHandler http.Handler) {
	ops := router.Group("", middleware.RateLimitByIP(opsRateLimit, opsRateBurst))

	ops.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ops.GET("/metrics", gin.WrapH(metricsHandler))
}
