package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/andysooho/cooking-rumi/internal/api/handlers"
	gameHandler "github.com/andysooho/cooking-rumi/internal/api/handlers/game"
	"github.com/andysooho/cooking-rumi/internal/api/handlers/health"
	"github.com/andysooho/cooking-rumi/internal/api/middleware"
	"github.com/andysooho/cooking-rumi/internal/core/ai/cache"
	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	gameService "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時，要涵蓋最慢的圖片批次
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (30MB)，多張 base64 照片會很大
	maxBodySize = 30 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager, redisCache *cache.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("text_model", cfg.Gemini.TextModel),
		zap.String("action_model", cfg.Gemini.ActionModel),
		zap.String("image_model", cfg.Gemini.ImageModel),
		zap.Duration("timeout", timeoutDuration),
	)

	aiService, err := aiservice.NewService(cfg, cacheManager, redisCache)
	if err != nil || aiService == nil {
		common.LogError("Failed to initialize AI service", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	ingredientSvc := gameService.NewIngredientService(aiService, cfg)
	recipeSvc := gameService.NewRecipeService(aiService, cfg)
	actionSvc := gameService.NewActionService(aiService, cacheManager, redisCache, cfg)
	evaluationSvc := gameService.NewEvaluationService(aiService, cfg)
	artSvc := gameService.NewArtService(aiService, cfg)

	// 全局中間件：設置超時與服務注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		game := gameHandler.NewHandler(ingredientSvc, recipeSvc, actionSvc, evaluationSvc, artSvc)

		gameGroup := api.Group("/game")
		{
			gameGroup.POST("/ingredients", game.HandleIngredientAnalysis)
			gameGroup.POST("/recipe", game.HandleRecipeSelection)
			gameGroup.POST("/action", game.HandleCookingAction)
			gameGroup.POST("/evaluation", game.HandleEvaluation)

			artGroup := gameGroup.Group("/art")
			{
				artGroup.POST("/sprites", game.HandleSpriteBatch)
				artGroup.POST("/cooking", game.HandleCookingArt)
			}
		}

		aiHandler := handlers.NewAIHandler(aiService, cfg)
		api.POST("/ai/chat", aiHandler.HandleChat)
		api.POST("/ai/image", aiHandler.HandleImage)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
