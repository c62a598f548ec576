package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/leetlab-2025.net/internal/adapter/judge0"
	"gitlab.com/leetlab-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/leetlab-2025.net/internal/adapter/redis/submitlimit"
	"gitlab.com/leetlab-2025.net/internal/config"
	"gitlab.com/leetlab-2025.net/internal/core/services/judging"
	"gitlab.com/leetlab-2025.net/internal/core/services/submission"
	"gitlab.com/leetlab-2025.net/internal/core/services/verify"
	logger2 "gitlab.com/leetlab-2025.net/internal/global/logger"
	http2 "gitlab.com/leetlab-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting code judging service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	executor := judge0.NewClient(sysCfg.JudgeConfig, logger)
	submissionRepo := submissionrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	limiter := submitlimit.NewLimiter(redisClient, logger, sysCfg.LimiterConfig.Limit, sysCfg.LimiterConfig.Window)

	// services
	judgeSvc := judging.NewJudgingService(executor, logger, sysCfg.JudgeConfig.MaxInflight)
	submissionSvc := submission.NewSubmissionService(judgeSvc, submissionRepo, limiter, logger)
	verifySvc := verify.NewVerifyService(executor, logger)
	serviceProvider := http2.NewServiceProvider(submissionSvc, verifySvc)

	// server
	httpServer := http2.NewServer(sysCfg.HTTPPort, "codeJudge", *serviceProvider, sysCfg.JwtConfig.Secret, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
