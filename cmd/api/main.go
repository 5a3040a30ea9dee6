package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	httpmiddleware "taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/session"
	"taskmanager/internal/app"
	"taskmanager/internal/config"
	"taskmanager/internal/logging"
	"taskmanager/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.NewLogger(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if _, err := dbadapter.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	secret := cfg.SessionSecret
	if secret == "" {
		// sessions will not survive a restart
		logger.Warn("SESSION_SECRET is not set, using an ephemeral secret")
		secret = uuid.NewString()
	}
	store := session.NewCookieStore(secret, cfg.SessionTTL, cfg.SessionSecure)

	r, err := app.NewRouter(db, store, gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
