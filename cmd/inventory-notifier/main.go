package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/iyhunko/treko-inventory/internal/config"
	"github.com/iyhunko/treko-inventory/internal/logger"
	sqspkg "github.com/iyhunko/treko-inventory/internal/sqs"
)

func main() {
	conf, err := config.LoadNotifierFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
	handleErr("creating SQS client", err)

	consumer := sqspkg.NewConsumer(sqsClient, conf.AWS.SQSQueueURL, sqspkg.LogHandler)

	slog.Info("Notification service started. Listening for messages...",
		slog.String("queue_url", conf.AWS.SQSQueueURL))

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("consumer stopped", slog.Any("err", err))
	}
	slog.Info("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
