package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"stockwatch/internal/client/groq"
	"stockwatch/internal/client/yahoo"
	"stockwatch/internal/config"
	cronrunner "stockwatch/internal/cron"
	"stockwatch/internal/db"
	"stockwatch/internal/handler"
	"stockwatch/internal/logger"
	gormrepository "stockwatch/internal/repository/gorm"
	"stockwatch/internal/service"

	_ "stockwatch/docs"
)

func main() {
	cfgPath := os.Getenv("SW_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("SW_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	yahooHTTP := &http.Client{Timeout: cfg.Yahoo.Timeout}
	yahooClient := yahoo.NewClient(yahooHTTP, cfg.Yahoo.BaseURL)
	groqClient := &groq.Client{
		BaseURL:     cfg.Groq.BaseURL,
		APIKey:      groqAPIKey(cfg.Groq),
		Model:       cfg.Groq.Model,
		Temperature: cfg.Groq.Temperature,
		MaxTokens:   cfg.Groq.MaxTokens,
		HTTP:        &http.Client{Timeout: cfg.Groq.Timeout},
	}

	store := gormrepository.New(dbConn.Gorm)
	advisor := &service.Advisor{
		Repo:   store,
		News:   yahooClient,
		Groq:   groqClient,
		Logger: logger,
	}
	refresher := &service.QuoteRefreshService{
		Repo:   store,
		Quotes: yahooClient,
		Logger: logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	watchlistHandler := &handler.WatchlistHandler{Repo: store}
	watchlistHandler.Register(engine)
	stockHandler := &handler.StockHandler{Repo: store}
	stockHandler.Register(engine)
	yahooHandler := &handler.YahooHandler{Client: yahooClient, Logger: logger}
	yahooHandler.Register(engine)
	chatHandler := &handler.ChatHandler{Advisor: advisor}
	chatHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.QuoteRefresh.Enabled {
		_, err := cronRunner.Add("quote_refresh", cfg.QuoteRefresh.Schedule, func(ctx context.Context) {
			result, err := refresher.RefreshAll(ctx)
			if err != nil {
				logger.Warn("quote refresh failed", zap.Error(err))
				return
			}
			logger.Info("quote refresh ok",
				zap.Int("symbols", result.Symbols),
				zap.Int("updated", result.Updated),
				zap.Int("errors", result.Errors),
			)
		})
		if err != nil {
			logger.Warn("cron register quote refresh failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func groqAPIKey(cfg config.GroqConfig) string {
	if key := strings.TrimSpace(os.Getenv("GROQ_API_KEY")); key != "" {
		return key
	}
	return strings.TrimSpace(cfg.APIKey)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
