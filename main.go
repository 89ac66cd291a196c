package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/cache"
	youtubeclient "playlist-grid/infrastructure/clients/youtube"
	"playlist-grid/infrastructure/configuration"
	"playlist-grid/infrastructure/logger"
	"playlist-grid/infrastructure/persistence"
	"playlist-grid/infrastructure/utils"
	httpHandler "playlist-grid/interfaces/http"
	"playlist-grid/interfaces/shortcode"
	"playlist-grid/interfaces/view"
	"playlist-grid/server"
	"playlist-grid/usecase"

	"golang.org/x/sync/errgroup"
)

const memoryCacheCleanup = 10 * time.Minute

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	issueToken := flag.Bool("admin-token", false, "print a signed admin token and exit")
	tokenSubject := flag.String("admin-subject", "admin", "subject of the issued admin token")
	tokenTTL := flag.Duration("admin-token-ttl", 24*time.Hour, "lifetime of the issued admin token")
	flag.Parse()

	app := configuration.C.App
	if *issueToken {
		if app.SecretKey == "" {
			fmt.Fprintln(os.Stderr, "SECRET_KEY is not configured")
			os.Exit(1)
		}
		token, err := utils.GenerateAdminToken(*tokenSubject, app.SecretKey, *tokenTTL)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	settingsRepo, db := initiateSettingsStore()
	if db != nil {
		defer db.Close()
	}

	transientCache, closeCache := initiateCache(ctx)
	defer closeCache()

	youtubeConfig := configuration.GetYouTubeConfig()
	logger.GetLogger().WithFields(map[string]interface{}{
		"hasAPIKey":     youtubeConfig.APIKey != "",
		"playlistIdSet": youtubeConfig.PlaylistID != "",
		"endpoint":      youtubeConfig.Endpoint,
		"timeout":       youtubeConfig.Timeout.String(),
	}).Info("Loaded YouTube configuration state")

	playlistClient, err := youtubeclient.NewPlaylistClient(ctx, &youtubeclient.Config{
		Endpoint: youtubeConfig.Endpoint,
		Timeout:  youtubeConfig.Timeout,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Failed to initialize YouTube client")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Failed to parse templates")
	}

	playlistRepo := persistence.NewPlaylistRepository(transientCache, playlistClient)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, youtubeConfig.SeedSettings())
	playlistUseCase := usecase.NewPlaylistUseCase(settingsUseCase, playlistRepo, renderer)

	registry := shortcode.NewRegistry()
	httpHandler.RegisterPlaylistShortcode(registry, playlistUseCase)

	playlistHandler := httpHandler.NewPlaylistHandler(playlistUseCase, settingsUseCase, registry, renderer, httpHandler.PageContent{
		Title:   configuration.C.Page.Title,
		Content: configuration.C.Page.Content,
	})
	settingsHandler := httpHandler.NewSettingsHandler(settingsUseCase, renderer)
	healthHandler := httpHandler.NewHealthHandler()

	router := server.InitiateRouter(playlistHandler, settingsHandler, healthHandler, app.SecretKey, app.AllowOrigins)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
		} else {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateSettingsStore falls back to the memory store when the configured database is unreachable.
func initiateSettingsStore() (repository.ISettings, *sql.DB) {
	vendor := configuration.C.Database.Vendor
	settingsRepo, db, err := persistence.OpenSettingsStore(vendor)
	if err != nil {
		logger.GetLogger().WithField("vendor", vendor).WithField("error", err).Error("Settings store unavailable - using memory store")
		return persistence.NewMemorySettingsRepository(), nil
	}
	return settingsRepo, db
}

// initiateCache prefers Redis and falls back to the in-process cache.
func initiateCache(ctx context.Context) (repository.ITransientCache, func()) {
	redisCfg := configuration.C.RedisClient
	addr := redisCfg.RedisAddr()
	if addr != "" {
		redisClient, err := cache.NewCache(ctx, addr, redisCfg.Username, redisCfg.Password, redisCfg.DB)
		if err == nil {
			logger.GetLogger().WithField("addr", addr).Info("Redis client initialized successfully.")
			return cache.NewRedisCache(redisClient), func() { _ = redisClient.Close() }
		}
		logger.GetLogger().WithField("addr", addr).WithField("error", err).Warn("Redis not available - using in-process cache")
	}
	return cache.NewMemoryCache(memoryCacheCleanup), func() {}
}
