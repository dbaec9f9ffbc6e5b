package main

import (
	"momentum/pkg/ratelimit"
	"momentum/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "momentum/internal/adapter/db"
	httpadapter "momentum/internal/adapter/http"
	"momentum/internal/adapter/http/handlers"
	httpmiddleware "momentum/internal/adapter/http/middleware"
	appservice "momentum/internal/app/service"
	"momentum/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("could not sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("could not connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("could not close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	reminderRepository := dbadapter.NewReminderRepository(db)
	renegotiationRepository := dbadapter.NewRenegotiationRepository(db)

	lifecycleService := appservice.NewLifecycleService(taskRepository, reminderRepository)
	renegotiationService := appservice.NewRenegotiationService(taskRepository, renegotiationRepository)

	limiter := ratelimit.NewWindowLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("could not set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(lifecycleService)
	renegotiationHandler := handlers.NewRenegotiationHandler(renegotiationService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, renegotiationHandler, limiter)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
