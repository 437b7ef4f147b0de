package sms

import "context"

// SMSProvider delivers review-outcome notifications to customers after
// a shop approves or rejects one of their transactions.
type SMSProvider interface {
	SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error)
}

// Message types. Review notifications are transactional; carriers
// route those ahead of promotional traffic.
const (
	TypeTransactional = "transactional"
	TypePromotional   = "promotional"
)

type SMSRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type SMSResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}
