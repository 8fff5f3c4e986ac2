package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-splendor/config"
	"go-splendor/controller"
	"go-splendor/engine"
	"go-splendor/middleware"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("❌ server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	catalog := engine.DefaultCatalog()
	if err := catalog.Validate(cfg.Settings()); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	clock := quartz.NewReal()

	var journal repository.Journal = repository.NewMemoryJournal()
	if cfg.RedisAddr != "" {
		rdb, err := repository.InitRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("✅ Redis 连接成功", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		journal = repository.NewRedisJournal(rdb, repository.RunID(clock.Now()))
	}

	registry := engine.NewRegistry(engine.NewMemoryStore(), catalog, cfg.Seed, logger)
	games := service.NewGameService(registry, journal, cfg.Settings(), clock, logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "X-Identity-Token"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r,
		controller.NewGameController(games, logger),
		middleware.IdentityMiddleware([]byte(cfg.JWTSecret), clock, logger),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("✅ listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
