package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends customer notifications through Twilio.
type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioProvider) SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(request.To)
	params.SetFrom(t.sender(request))
	params.SetBody(request.Message)

	message, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("failed to send notification via Twilio: %w", err)
	}

	response := &SMSResponse{}
	if message.Sid != nil {
		response.MessageID = *message.Sid
	}
	if message.Status != nil {
		response.Status = *message.Status
	}
	return response, nil
}

func (t *TwilioProvider) sender(request *SMSRequest) string {
	if request.From != "" {
		return request.From
	}
	return t.fromNumber
}
