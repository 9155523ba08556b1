package router

import (
	"log/slog"
	"time"

	"complexity-analyzer/internal/handler"
	"complexity-analyzer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(svcCtx *service.ServiceContext) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(svcCtx.Logger))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 初始化handlers
	analysisHandler := handler.NewAnalysisHandler(svcCtx.AnalysisService)
	runHandler := handler.NewRunHandler(svcCtx.AnalysisService)

	r.GET("/", analysisHandler.Home)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/artifacts", svcCtx.Config.Artifacts.Dir)

	// API路由
	api := r.Group("/api")
	{
		api.GET("/analyze", analysisHandler.Analyze)

		// 算法目录
		algorithms := api.Group("/algorithms")
		{
			algorithms.GET("", analysisHandler.ListAlgorithms)
			algorithms.GET("/:id/latest", runHandler.LatestRun)
		}

		// 运行记录：只有创建和查询
		runs := api.Group("/runs")
		{
			runs.POST("", runHandler.SaveRun)
			runs.GET("", runHandler.ListRuns)
			runs.GET("/:id", runHandler.GetRun)
			runs.GET("/:id/report", runHandler.GetRunReport)
		}
	}

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}
		logger.Log(c.Request.Context(), level, "http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}
