package sqs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/iyhunko/treko-inventory/internal/config"
)

// DefaultRegion is used when AWS_REGION is empty, which is the usual case
// against a local endpoint.
const DefaultRegion = "us-east-1"

// NewClient builds an SQS client for the product notification queue. A
// non-empty Endpoint points the client at a local emulator.
func NewClient(ctx context.Context, conf config.AWSConfig) (*sqs.Client, error) {
	region := conf.Region
	if region == "" {
		region = DefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if conf.Endpoint != "" {
		awsCfg.BaseEndpoint = aws.String(conf.Endpoint)
	}

	slog.Debug("SQS client configured",
		slog.String("region", region),
		slog.String("endpoint", conf.Endpoint),
		slog.String("queue_url", conf.SQSQueueURL))
	return sqs.NewFromConfig(awsCfg), nil
}
