package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// PublisherAPI defines the SQS operation used by Publisher.
type PublisherAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher handles publishing messages to AWS SQS.
type Publisher struct {
	client   PublisherAPI
	queueURL string
}

// NewPublisher creates a new SQS Publisher with the given client and queue URL.
func NewPublisher(client PublisherAPI, queueURL string) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
	}
}

// PublishProductMessage publishes a product message to the SQS queue.
func (p *Publisher) PublishProductMessage(ctx context.Context, msg ProductMessage) error {
	messageBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return p.PublishRaw(ctx, string(messageBody))
}

// PublishRaw sends an already encoded message body.
func (p *Publisher) PublishRaw(ctx context.Context, body string) error {
	_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}
	return nil
}
