package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/treko-inventory/internal/config"
	httpAPI "github.com/iyhunko/treko-inventory/internal/http"
	"github.com/iyhunko/treko-inventory/internal/http/controller"
	"github.com/iyhunko/treko-inventory/internal/logger"
	"github.com/iyhunko/treko-inventory/internal/metrics"
	"github.com/iyhunko/treko-inventory/internal/repository/sql"
	"github.com/iyhunko/treko-inventory/internal/service"
	sqspkg "github.com/iyhunko/treko-inventory/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	productRepository := sql.NewProductRepository(db)
	employeeRepository := sql.NewEmployeeRepository(db)
	eventRepository := sql.NewEventRepository(db)
	transactionalRepository := sql.NewTransactionalRepository(db)

	productService := service.NewProductService(productRepository, transactionalRepository)
	authService := service.NewAuthService(employeeRepository, conf.Auth.JWTSecret, conf.Auth.TokenTTL)

	if conf.Bootstrap.Enabled() {
		err = authService.EnsureEmployee(ctx, conf.Bootstrap.Code, conf.Bootstrap.Name, conf.Bootstrap.Password)
		handleErr("creating bootstrap employee", err)
	}

	// Events stay pending in the outbox until a queue is configured.
	var outboxWorker *service.OutboxWorker
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
		handleErr("creating SQS client", err)

		publisher := sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
		outboxWorker = service.NewOutboxWorker(eventRepository, publisher, conf.OutboxInterval)
		go outboxWorker.Start(ctx)
	} else {
		slog.Warn("SQS_QUEUE_URL not set, outbox events will not be published")
	}

	router := httpAPI.InitRouter(gin.New(), httpAPI.Controllers{
		Health:   controller.New(),
		Auth:     controller.NewAuthController(authService),
		Product:  controller.NewProductController(productService),
		Sessions: authService,
	})
	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf)

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	if outboxWorker != nil {
		outboxWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics server shutdown failed", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
