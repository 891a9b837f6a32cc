// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kecarajocomer/v3/internal/application/ai"
	"github.com/kecarajocomer/v3/internal/application/planner"
	appshopping "github.com/kecarajocomer/v3/internal/application/shopping"
	"github.com/kecarajocomer/v3/internal/infrastructure/config"
	"github.com/kecarajocomer/v3/internal/infrastructure/http/handlers"
	"github.com/kecarajocomer/v3/internal/infrastructure/http/server"
	"github.com/kecarajocomer/v3/internal/infrastructure/monitoring"
	gormRepo "github.com/kecarajocomer/v3/internal/infrastructure/persistence/gorm"
	"github.com/kecarajocomer/v3/internal/infrastructure/persistence/memory"
	redisRepo "github.com/kecarajocomer/v3/internal/infrastructure/persistence/redis"
	"github.com/kecarajocomer/v3/internal/ports/inbound"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
	"github.com/kecarajocomer/v3/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides Prometheus metrics
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
)

// DatabaseModule provides the GORM database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := gormRepo.Open(cfg)
		if err != nil {
			return nil, err
		}

		log.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Bool("auto_migrate", cfg.Database.AutoMigrate),
		)
		return db, nil
	},
)

// CacheModule provides caching. Redis when enabled, otherwise the
// in-process cache.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return redisRepo.NewCacheRepository(cfg, log)
		}
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewMealPlanRepository,
	gormRepo.NewRecipeRepository,
	gormRepo.NewPantryRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	// AI service
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		provider := cfg.AI.Provider
		if provider == "" {
			provider = "mock"
		}
		return ai.NewAIService(provider, log)
	},

	// Shopping list service
	func(
		mealPlans outbound.MealPlanRepository,
		recipes outbound.RecipeRepository,
		pantry outbound.PantryRepository,
		cache outbound.CacheRepository,
		metrics *monitoring.Metrics,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.ShoppingListService {
		return appshopping.NewShoppingListService(
			mealPlans, recipes, pantry, cache, metrics,
			appshopping.Options{
				CacheTTL:     cfg.Shopping.CacheTTL,
				MaxRangeDays: cfg.Shopping.MaxRangeDays,
			},
			log,
		)
	},

	// Meal plan service
	func(
		aiService outbound.AIService,
		recipes outbound.RecipeRepository,
		mealPlans outbound.MealPlanRepository,
		metrics *monitoring.Metrics,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.MealPlanService {
		return planner.NewMealPlanService(aiService, recipes, mealPlans, metrics, cfg.AI.Provider, log)
	},
)

// HTTPModule provides the HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewShoppingHandler,
	handlers.NewMealPlanHandler,
	func(cfg *config.Config) *handlers.HealthHandler {
		return handlers.NewHealthHandler(cfg.App.Version)
	},
	server.New,
)

// LifecycleModule registers startup and shutdown hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting KeCarajoComer application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down KeCarajoComer application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
