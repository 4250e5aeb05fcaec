package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/api"
	"metamorfose-backend/internal/cache"
	"metamorfose-backend/internal/db"
	"metamorfose-backend/internal/gateway"
	"metamorfose-backend/internal/model"
	"metamorfose-backend/internal/scheduler"
	"metamorfose-backend/internal/service"
	"metamorfose-backend/internal/store"
	"metamorfose-backend/internal/worker"
)

// @title Metamorfose plant monitoring API
// @version 1.0
// @description REST access to the plant dashboard and monitoring routines.
// @BasePath /api/v1
func main() {
	// Setup logger
	logger := log.New(os.Stdout, "metamorfose ", log.LstdFlags)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("failed to read .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	oracleDB, err := db.OpenOracle(&cfg.Oracle)
	if err != nil {
		logger.Fatalf("failed to open oracle pool: %v", err)
	}
	defer oracleDB.Close()

	oracle := gateway.NewOracleGateway(oracleDB)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := oracle.Ping(pingCtx); err != nil {
		// Requests surface the failure until the database becomes reachable.
		logger.Printf("oracle is not reachable yet: %v", err)
	} else {
		logger.Println("oracle connection verified")
	}
	pingCancel()

	jobDB, err := db.InitJobStore(&cfg.JobStore)
	if err != nil {
		logger.Fatalf("failed to initialize job store: %v", err)
	}
	jobs := store.NewGormStore(jobDB)
	logger.Println("job store initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dashboard := cache.NewDashboard(cfg.Cache)

	pool := worker.NewPool(cfg.WorkerPool, oracle, jobs)
	pool.OnSuccess(func(model.BatchJob) { dashboard.Flush() })
	pool.Start(ctx)

	svc := service.New(oracle, dashboard, jobs, pool)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(ctx, cfg.Scheduler.Entries, svc)
		if err != nil {
			logger.Fatalf("failed to configure scheduler: %v", err)
		}
		sched.Start()
		logger.Printf("scheduler started with %d entries", sched.Len())
	}

	router := api.NewRouter(&cfg.Server, svc)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("HTTP server Shutdown: %v", err)
	}

	cancel()
	logger.Println("Server gracefully stopped")
}
