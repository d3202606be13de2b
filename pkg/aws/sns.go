package aws

import (
	"context"
	"encoding/json"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

// SNSPaymentPublisher fans payment events out to an SNS topic for consumers
// outside the Kafka cluster (mail, mobile push).
type SNSPaymentPublisher struct {
	client   *sns.Client
	topicArn string
}

func NewSNSPaymentPublisher(cfg sdkaws.Config, topicArn string) *SNSPaymentPublisher {
	return &SNSPaymentPublisher{client: sns.NewFromConfig(cfg), topicArn: topicArn}
}

func (s *SNSPaymentPublisher) PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) error {
	if s.topicArn == "" {
		return fmt.Errorf("empty topicArn")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	message := string(data)
	_, err = s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &s.topicArn,
		Message:  &message,
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", s.topicArn, err)
	}
	return nil
}
