package routes

import (
	"github.com/dnsfilter/dnsfilter-report/internal/api/handlers"
	"github.com/dnsfilter/dnsfilter-report/internal/config"
	middlewares "github.com/dnsfilter/dnsfilter-report/internal/middleware"
	"github.com/dnsfilter/dnsfilter-report/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	return SetupRouterWithTracer(cfg, logger, otel.GetTracerProvider())
}

// SetupRouterWithTracer monta o router usando o provider de traces informado
func SetupRouterWithTracer(cfg *config.Config, logger *zap.Logger, tp trace.TracerProvider) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.TraceCategoriaRequest(tp))
	r.Use(middlewares.AccessLog(logger))

	categoryService := services.NewCategoryService(logger.Sugar(), tp)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	healthHandler := handlers.NewHealthHandler()

	api := r.Group("/api/v1")
	{
		api.GET("/categorias", categoryHandler.ListCategorias)
		api.GET("/categorias/*"+middlewares.CodigoParam, categoryHandler.GetCategoria)
		api.POST("/categorias/lookup", categoryHandler.LookupBatch)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
