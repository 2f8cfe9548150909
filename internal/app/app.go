package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/museum/internal/config"
	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/httpserver"
	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/redis"
	"github.com/MrSnakeDoc/museum/internal/router"
	"github.com/MrSnakeDoc/museum/internal/scheduler"
	"github.com/MrSnakeDoc/museum/internal/search"
	"github.com/MrSnakeDoc/museum/internal/sitemap"
	redisstore "github.com/MrSnakeDoc/museum/internal/store/redis"
	"github.com/MrSnakeDoc/museum/internal/version"
	"github.com/MrSnakeDoc/museum/internal/viewer"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	registry    *content.Registry
	reloader    *scheduler.ContentReloader
	watcher     *scheduler.Watcher
	gc          *scheduler.ViewGC
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Route table is static; a broken table is a programming error.
	table := router.DefaultTable()
	if err := table.Validate(); err != nil {
		loggerClient.Errorf("invalid route table: %v", err)
		os.Exit(1)
	}

	registry := content.NewRegistry()
	index := search.NewIndex()
	store := redisstore.NewStore(redisClient)

	nav := router.New(table, loggerClient)
	engine := search.NewEngine(index, loggerClient)
	view := viewer.New(registry, loggerClient)

	// Warm view counters from Redis so a restart does not reset them.
	syncer := scheduler.NewUsageSyncer(store, registry, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync view counters on startup",
			logger.Error(err))
	}

	// Optional sitemap tree, validated against the route table.
	var tree []sitemap.Node
	if cfg.SitemapFile != "" {
		tree, err = sitemap.Load(cfg.SitemapFile)
		if err != nil {
			loggerClient.Errorf("failed to load sitemap: %v", err)
			os.Exit(1)
		}
		if err := sitemap.Validate(tree, table); err != nil {
			loggerClient.Errorf("invalid sitemap: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("sitemap loaded", logger.String("file", cfg.SitemapFile))
	} else {
		loggerClient.Info("sitemap file not configured, sitemap disabled")
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	loader := content.NewLoader(cfg.ContentDir, cfg.ManifestFile)
	reloader := scheduler.NewContentReloader(
		loader,
		registry,
		index,
		store,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Optional filesystem watcher feeding the same trigger channel.
	var watcher *scheduler.Watcher
	if cfg.WatchContent {
		watcher = scheduler.NewWatcher(cfg.ContentDir, reloadTrigger, loggerClient)
	}

	gc := scheduler.NewViewGC(
		store,
		registry,
		loggerClient,
		cfg.ViewGCInterval,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:             loggerClient,
		StartTime:          time.Now(),
		Version:            version.Version,
		Commit:             version.Commit,
		BuildDate:          version.BuildDate,
		GoVersion:          version.GoVersion,
		TimeNow:            time.Now,
		AllowedHosts:       cfg.AllowedHosts,
		AllowedCIDRS:       cfg.AllowedCIDRS,
		TrustProxy:         cfg.TrustProxy,
		RedisClient:        redisClient,
		Store:              store,
		Registry:           registry,
		Index:              index,
		Search:             engine,
		Router:             nav,
		Viewer:             view,
		Sitemap:            tree,
		Featured:           content.NewFeaturedLoader(filepath.Join(cfg.ContentDir, "featured")),
		FeaturedTTL:        cfg.FeaturedTTL,
		AssetsDir:          cfg.AssetsDir,
		SearchBurst:        cfg.SearchBurst,
		SearchRefillPerMin: cfg.SearchRefillPerMin,
		ReloadTrigger:      reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		registry:    registry,
		reloader:    reloader,
		watcher:     watcher,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Museum v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Museum %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start content reloader (loads collections and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start filesystem watcher (if enabled)
	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start content watcher: %w", err)
		}
		a.logger.Info("content watcher started",
			logger.String("dir", a.cfg.ContentDir))
	}

	// Start view counter garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start view gc: %w", err)
	}
	a.logger.Info("view gc started",
		logger.Duration("interval", a.cfg.ViewGCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()

	if a.watcher != nil {
		a.watcher.Stop()
	}

	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Museum stopped cleanly")
	return nil
}
