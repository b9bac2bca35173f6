package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// ConsumerAPI defines the interface for SQS operations used by Consumer.
type ConsumerAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Handler reacts to a decoded product message. A returned error leaves the
// message on the queue for redelivery.
type Handler func(ctx context.Context, msg ProductMessage) error

// LogHandler writes each notification to the default logger.
func LogHandler(_ context.Context, msg ProductMessage) error {
	slog.Info("Received product notification",
		slog.String("action", msg.Action),
		slog.Int64("product_id", msg.ProductID),
		slog.String("name", msg.Name),
		slog.Float64("price", msg.Price),
	)
	return nil
}

// Consumer handles consuming messages from AWS SQS.
type Consumer struct {
	client   ConsumerAPI
	queueURL string
	handler  Handler
}

// NewConsumer creates a new SQS Consumer. A nil handler falls back to LogHandler.
func NewConsumer(client ConsumerAPI, queueURL string, handler Handler) *Consumer {
	if handler == nil {
		handler = LogHandler
	}
	return &Consumer{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
	}
}

// Start begins consuming messages from the SQS queue until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	slog.Info("Starting SQS consumer", slog.String("queueURL", c.queueURL))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping SQS consumer")
			return ctx.Err()
		default:
			if err := c.receiveMessages(ctx); err != nil {
				slog.Error("Error receiving messages", slog.Any("err", err))
			}
		}
	}
}

func (c *Consumer) receiveMessages(ctx context.Context) error {
	result, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     20, // Long polling
	})
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, message := range result.Messages {
		if err := c.processMessage(ctx, message); err != nil {
			slog.Error("Error processing message", slog.Any("err", err))
			continue
		}

		if err := c.deleteMessage(ctx, message); err != nil {
			slog.Error("Error deleting message", slog.Any("err", err))
		}
	}

	return nil
}

func (c *Consumer) processMessage(ctx context.Context, message types.Message) error {
	if message.Body == nil {
		return fmt.Errorf("message body is nil")
	}

	var productMsg ProductMessage
	if err := json.Unmarshal([]byte(*message.Body), &productMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	if err := c.handler(ctx, productMsg); err != nil {
		return fmt.Errorf("failed to handle %s notification for product %d: %w", productMsg.Action, productMsg.ProductID, err)
	}
	return nil
}

func (c *Consumer) deleteMessage(ctx context.Context, message types.Message) error {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
