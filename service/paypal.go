package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

const (
	// the classic PayPal hosts; the SDK's APIBase constants point at the
	// api-m hosts and cannot serve this wire contract
	apiBaseSandbox = "https://api.sandbox.paypal.com"
	apiBaseLive    = "https://api.paypal.com"

	tokenPath    = "/v1/oauth2/token"
	ordersPath   = "/v2/checkout/orders"
	capturesPath = "/v2/payments/captures"

	// tokenExpiryMargin is subtracted from the lifetime PayPal reports so a
	// token is never presented moments before it lapses server-side
	tokenExpiryMargin = 30 * time.Second

	defaultCurrency  = "USD"
	userActionPayNow = "PAY_NOW"

	createOrderErrorPrefix   = "Failed to create PayPal payment"
	captureOrderErrorPrefix  = "Failed to capture PayPal payment"
	refundCaptureErrorPrefix = "Failed to refund PayPal payment"
	getOrderErrorPrefix      = "Failed to get PayPal order"
)

// PayPalService owns the PayPal REST integration: token acquisition and
// caching, request construction for the four supported operations, and
// normalisation of every outcome into a models.ToolResult envelope.
type PayPalService struct {
	Config     config.Config
	APIBase    string
	HTTPClient *http.Client

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

// NewPayPalService returns a PayPalService pointed at the API base resolved
// from the configured mode, with a bounded per-call timeout.
func NewPayPalService(cfg config.Config) *PayPalService {
	return &PayPalService{
		Config:     cfg,
		APIBase:    getPayPalAPIBase(cfg.PayPalMode),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// getPayPalAPIBase resolves the PayPal API base URL for the mode the service
// is set to. Anything other than live falls through to the sandbox.
func getPayPalAPIBase(mode string) string {
	if mode == "live" {
		return apiBaseLive
	}
	return apiBaseSandbox
}

// getAccessToken returns the cached access token while it remains valid and
// requests a new one from PayPal otherwise. The lock is held across the
// refresh so concurrent callers cannot request duplicate tokens.
func (pp *PayPalService) getAccessToken(ctx context.Context) (string, error) {
	pp.mu.Lock()
	defer pp.mu.Unlock()

	if pp.accessToken != "" && time.Now().Before(pp.tokenExpiresAt) {
		return pp.accessToken, nil
	}

	request, err := http.NewRequestWithContext(ctx, "POST", pp.APIBase+tokenPath, strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("error generating token request for PayPal: [%s]", err)
	}

	request.SetBasicAuth(pp.Config.PayPalClientID, pp.Config.PayPalClientSecret)
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := pp.HTTPClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("error sending token request to PayPal: [%s]", err)
	}
	defer resp.Body.Close()

	// the body is not consulted on a failed token request
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to obtain access token: status [%v] back from PayPal", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading token response from PayPal: [%s]", err)
	}

	tokenResponse := &models.AccessTokenResponse{}
	err = json.Unmarshal(body, tokenResponse)
	if err != nil {
		return "", fmt.Errorf("error reading token response from PayPal: [%s]", err)
	}
	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("failed to obtain access token: empty access_token back from PayPal")
	}

	pp.accessToken = tokenResponse.AccessToken
	pp.tokenExpiresAt = time.Now().Add(time.Duration(tokenResponse.ExpiresIn)*time.Second - tokenExpiryMargin)

	return pp.accessToken, nil
}

// sendRequest issues one authenticated request to PayPal and returns the
// response status and raw body. Exactly one attempt is made per call.
func (pp *PayPalService) sendRequest(ctx context.Context, method, path string, reqBody interface{}) (int, []byte, error) {
	token, err := pp.getAccessToken(ctx)
	if err != nil {
		return 0, nil, err
	}

	var request *http.Request
	if reqBody != nil {
		requestBody, err := json.Marshal(reqBody)
		if err != nil {
			return 0, nil, fmt.Errorf("error marshalling request body for PayPal: [%s]", err)
		}
		request, err = http.NewRequestWithContext(ctx, method, pp.APIBase+path, bytes.NewBuffer(requestBody))
		if err != nil {
			return 0, nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
		}
	} else {
		request, err = http.NewRequestWithContext(ctx, method, pp.APIBase+path, nil)
		if err != nil {
			return 0, nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
		}
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+token)
	request.Header.Add("content-type", "application/json")

	resp, err := pp.HTTPClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending request to PayPal: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	return resp.StatusCode, body, nil
}

// CreateOrder creates a PayPal order to capture the given amount. The amount
// is forwarded exactly as supplied and the currency defaults to USD.
func (pp *PayPalService) CreateOrder(ctx context.Context, amount, currency, description string) models.ToolResult {
	if currency == "" {
		currency = defaultCurrency
	}

	orderRequest := models.OutgoingPayPalOrderRequest{
		Intent: paypal.OrderIntentCapture,
		PurchaseUnits: []models.PurchaseUnit{
			{
				Amount: models.Amount{
					CurrencyCode: currency,
					Value:        amount,
				},
				Description: description,
			},
		},
		ApplicationContext: models.ApplicationContext{
			ReturnUrl:  pp.Config.RedirectBaseURL + "/success",
			CancelUrl:  pp.Config.RedirectBaseURL + "/cancel",
			UserAction: userActionPayNow,
		},
	}

	status, body, err := pp.sendRequest(ctx, "POST", ordersPath, orderRequest)
	if err != nil {
		return failureResult(createOrderErrorPrefix, err)
	}

	result := resultFromResponse(createOrderErrorPrefix, status, body)
	if result.Success {
		logApprovalLink(body)
	}
	return result
}

// CaptureOrder captures an approved PayPal order
func (pp *PayPalService) CaptureOrder(ctx context.Context, orderID string) models.ToolResult {
	status, body, err := pp.sendRequest(ctx, "POST", ordersPath+"/"+orderID+"/capture", nil)
	if err != nil {
		return failureResult(captureOrderErrorPrefix, err)
	}
	return resultFromResponse(captureOrderErrorPrefix, status, body)
}

// RefundCapture refunds a captured payment, in part when an amount is given
// or in full when it is not. A currency without an amount has nothing to
// qualify and is ignored.
func (pp *PayPalService) RefundCapture(ctx context.Context, captureID, amount, currency, note string) models.ToolResult {
	if currency == "" {
		currency = defaultCurrency
	}

	refundRequest := models.OutgoingPayPalRefundRequest{
		NoteToPayer: note,
	}
	if amount != "" {
		refundRequest.Amount = &models.Amount{
			CurrencyCode: currency,
			Value:        amount,
		}
	}

	status, body, err := pp.sendRequest(ctx, "POST", capturesPath+"/"+captureID+"/refund", refundRequest)
	if err != nil {
		return failureResult(refundCaptureErrorPrefix, err)
	}
	return resultFromResponse(refundCaptureErrorPrefix, status, body)
}

// GetOrder fetches the current state of a PayPal order
func (pp *PayPalService) GetOrder(ctx context.Context, orderID string) models.ToolResult {
	status, body, err := pp.sendRequest(ctx, "GET", ordersPath+"/"+orderID, nil)
	if err != nil {
		return failureResult(getOrderErrorPrefix, err)
	}
	return resultFromResponse(getOrderErrorPrefix, status, body)
}

// resultFromResponse wraps a PayPal response in the envelope. Success mirrors
// the HTTP status and the body is carried through byte for byte in both the
// success and failure cases; a body that is not JSON counts as a thrown call.
func resultFromResponse(prefix string, status int, body []byte) models.ToolResult {
	if !json.Valid(body) {
		return failureResult(prefix, fmt.Errorf("error parsing response from PayPal: invalid JSON"))
	}
	return models.ToolResult{
		Success: status >= http.StatusOK && status < http.StatusMultipleChoices,
		Data:    json.RawMessage(body),
	}
}

func failureResult(prefix string, err error) models.ToolResult {
	return models.ToolResult{
		Success: false,
		Error:   fmt.Sprintf("%s: %s", prefix, err),
	}
}

// logApprovalLink records the approval URL of a freshly created order so an
// operator can trace where the payer was sent. Best effort, log only.
func logApprovalLink(body []byte) {
	createdOrder := &models.CreatedOrderResource{}
	if err := json.Unmarshal(body, createdOrder); err != nil {
		return
	}
	for _, link := range createdOrder.Links {
		if link.Rel == "approve" {
			log.Debug("created PayPal order", log.Data{"order_id": createdOrder.ID, "status": createdOrder.Status, "approve_url": link.Href})
			return
		}
	}
}
