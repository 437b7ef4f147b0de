package sms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// AWSSNSProvider sends customer notifications through Amazon SNS.
type AWSSNSProvider struct {
	client *sns.Client
}

func NewAWSSNSProvider(region string) (*AWSSNSProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSNSProvider{client: sns.NewFromConfig(cfg)}, nil
}

func (a *AWSSNSProvider) SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error) {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(request.To),
		Message:     aws.String(request.Message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(snsSMSType(request.Type)),
			},
		},
	}

	result, err := a.client.Publish(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to send notification via SNS: %w", err)
	}

	response := &SMSResponse{Status: "sent"}
	if result.MessageId != nil {
		response.MessageID = *result.MessageId
	}
	return response, nil
}

// snsSMSType maps our message types onto the SNS SMSType attribute.
// Unknown types fall back to Transactional so review notifications are
// never throttled as marketing traffic.
func snsSMSType(messageType string) string {
	if messageType == TypePromotional {
		return "Promotional"
	}
	return "Transactional"
}
