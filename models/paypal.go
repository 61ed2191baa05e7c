package models

import "github.com/plutov/paypal/v4"

// AccessTokenResponse is the body returned by the PayPal OAuth2 token endpoint
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// OutgoingPayPalOrderRequest is the request sent to PayPal to create an order
type OutgoingPayPalOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

// PurchaseUnit contains an amount and optional description for a PayPal order
type PurchaseUnit struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Amount is the amount object for a PayPal order. Value is carried as the
// literal string supplied by the caller, never reformatted.
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// ApplicationContext is needed to supply PayPal with return and cancel urls
type ApplicationContext struct {
	ReturnUrl  string `json:"return_url"`
	CancelUrl  string `json:"cancel_url"`
	UserAction string `json:"user_action"`
}

// OutgoingPayPalRefundRequest is the request sent to PayPal to refund a
// capture. Omitted fields must be absent from the body entirely, so Amount is
// a pointer and everything carries omitempty.
type OutgoingPayPalRefundRequest struct {
	Amount      *Amount `json:"amount,omitempty"`
	InvoiceID   string  `json:"invoice_id,omitempty"`
	NoteToPayer string  `json:"note_to_payer,omitempty"`
}

// CreatedOrderResource is the subset of a created order parsed for logging
// the approval link. The envelope data keeps the full body.
type CreatedOrderResource struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Links  []paypal.Link `json:"links"`
}

// CapturedOrderResource is the subset of a capture response needed to render
// the checkout success page.
type CapturedOrderResource struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PurchaseUnits []CapturedPurchaseUnit `json:"purchase_units"`
}

// CapturedPurchaseUnit holds the payments made against one purchase unit
type CapturedPurchaseUnit struct {
	ReferenceID string            `json:"reference_id,omitempty"`
	Payments    *CapturedPayments `json:"payments,omitempty"`
}

// CapturedPayments lists the captures taken for a purchase unit
type CapturedPayments struct {
	Captures []CaptureResource `json:"captures"`
}

// CaptureResource is a single capture with its settled amount
type CaptureResource struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Amount *Amount `json:"amount,omitempty"`
}
