package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/spacia-app/property-backend/config"
)

// SQSGateway enqueues inquiry payloads for the external email sender.
// Sends are best-effort; nothing downstream acknowledges delivery.
type SQSGateway struct {
	client   *sqs.Client
	queueURL string
}

func NewSQSGateway(ctx context.Context, cfg config.SQSConfig) (*SQSGateway, error) {
	if cfg.QueueURL == "" {
		return nil, fmt.Errorf("SQS_QUEUE_URL is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SQSGateway{
		client:   sqs.NewFromConfig(awsCfg),
		queueURL: cfg.QueueURL,
	}, nil
}

func (g *SQSGateway) Send(ctx context.Context, payload []byte) error {
	_, err := g.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(g.queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	return nil
}
