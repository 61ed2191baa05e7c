package service

import (
	"context"

	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

//go:generate mockgen -source=payment_provider_service.go -destination=payment_provider_service_mock.go -package=service

// PaymentProviderService is an Interface for all the requests to the external
// payment provider. Every operation resolves to a ToolResult envelope rather
// than an error so callers see one shape regardless of outcome.
type PaymentProviderService interface {
	CreateOrder(ctx context.Context, amount, currency, description string) models.ToolResult
	CaptureOrder(ctx context.Context, orderID string) models.ToolResult
	RefundCapture(ctx context.Context, captureID, amount, currency, note string) models.ToolResult
	GetOrder(ctx context.Context, orderID string) models.ToolResult
}
