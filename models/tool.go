package models

import "encoding/json"

// ToolResult is the uniform envelope returned by every PayPal operation.
// Success mirrors the HTTP outcome of the PayPal call, Data carries the
// response body untouched for successful and failed calls alike, and Error is
// only set when the call itself fails before a PayPal response is obtained.
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ToolCatalog is the response listing the tools this service exposes
type ToolCatalog struct {
	Tools []ToolDescriptor `json:"tools"`
}

// ToolDescriptor describes a single invocable tool to callers
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema ToolInputSchema `json:"input_schema"`
}

// ToolInputSchema is a JSON-schema style description of a tool's arguments
type ToolInputSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required,omitempty"`
}

// ToolProperty describes one argument within a tool input schema
type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
}

// CreatePaymentArgs are the arguments for the create_paypal_payment tool
type CreatePaymentArgs struct {
	Amount      string `json:"amount" validate:"required,amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// CapturePaymentArgs are the arguments for the capture_paypal_payment tool
type CapturePaymentArgs struct {
	OrderID string `json:"orderId" validate:"required"`
}

// RefundPaymentArgs are the arguments for the refund_paypal_payment tool
type RefundPaymentArgs struct {
	CaptureID string `json:"captureId" validate:"required"`
	Amount    string `json:"amount" validate:"omitempty,amount"`
	Currency  string `json:"currency"`
	Note      string `json:"note"`
}

// GetOrderArgs are the arguments for the get_paypal_order tool
type GetOrderArgs struct {
	OrderID string `json:"orderId" validate:"required"`
}
