package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-management-service/database"
	"order-management-service/logger"
	aws_pkg "order-management-service/pkg/aws"
	"order-management-service/routes"
	"order-management-service/services"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	awsCfg, awsErr := aws_pkg.LoadAWSConfig(context.Background())

	var logWriter *aws_pkg.LogWriter
	if cfg.CloudWatchEnabled && awsErr == nil {
		logWriter, err = aws_pkg.NewLogWriter(context.Background(), awsCfg, os.Getenv("CLOUDWATCH_LOG_GROUP"), "order-management-service")
		if err != nil {
			log.Printf("CloudWatch Logs unavailable: %v", err)
		}
	}
	if logWriter != nil {
		defer logWriter.Close() //nolint:errcheck
		err = logger.InitializeWithWriter(cfg.AppEnv, logWriter)
	} else {
		err = logger.Initialize(cfg.AppEnv)
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Log

	if cfg.IsTest() {
		gin.SetMode(gin.TestMode)
	} else if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DB.URL(), zlog); err != nil {
			zlog.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	var snsClient aws_pkg.SNSPublisher
	var metrics *aws_pkg.MetricsClient
	if awsErr != nil {
		zlog.Warn("AWS config unavailable, SNS and metrics disabled", zap.Error(awsErr))
	} else {
		snsClient = aws_pkg.NewSNSClient(awsCfg)
		metrics = aws_pkg.NewMetricsClient(awsCfg, "", cfg.CloudWatchEnabled)
	}

	r := routes.SetupRouter(routes.Deps{
		DB:                 db,
		Logger:             zlog,
		Notifier:           services.NewEventNotifier(snsClient, cfg.EventsSNSTopicARN, zlog),
		Metrics:            metrics,
		StaticDir:          cfg.StaticDir,
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	if cfg.LambdaMode {
		zlog.Info("Starting in Lambda mode")
		adapter := ginadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	if cfg.IsTest() {
		zlog.Info("APP_ENV=test, not starting the HTTP listener")
		return
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zlog.Info("Order management service started", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	<-quit
	zlog.Info("Shutting down order management service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
