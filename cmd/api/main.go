package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-rotation/internal/api"
	"meal-rotation/internal/api/handlers/health"
	"meal-rotation/internal/core/grocery"
	"meal-rotation/internal/infrastructure/cache"
	"meal-rotation/internal/infrastructure/config"
	"meal-rotation/internal/infrastructure/persistence"
	"meal-rotation/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("database_dsn", cfg.Database.DSN),
		zap.String("checks_backend", cfg.Checks.Backend),
	)

	// 連接資料庫
	db, err := persistence.NewDatabase(&cfg.Database, cfg.App.Debug)
	if err != nil {
		common.LogFatal("Failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			common.LogFatal("Failed to migrate database", zap.Error(err))
		}
	}

	// 初始化勾選儲存
	checkStore, closeStore, err := cache.NewCheckStore(cfg, db)
	if err != nil {
		common.LogFatal("Failed to initialize check store", zap.Error(err))
	}
	if closeStore != nil {
		defer closeStore()
	}

	checkers := map[string]health.Checker{
		"database": db.Ping,
	}
	if p, ok := checkStore.(pinger); ok {
		checkers["checks"] = p.Ping
	}

	groceryService := grocery.NewService(persistence.NewGormGroceryRepository(db.DB), checkStore)

	// 設置路由
	router, err := api.SetupRouter(cfg, api.Dependencies{
		GroceryService: groceryService,
		Checkers:       checkers,
	})
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
