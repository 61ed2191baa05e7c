package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal.api.ch.gov.uk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Names of the tools exposed through the dispatch endpoint
const (
	toolCreatePayment  = "create_paypal_payment"
	toolCapturePayment = "capture_paypal_payment"
	toolRefundPayment  = "refund_paypal_payment"
	toolGetOrder       = "get_paypal_order"
)

var toolCatalog = []models.ToolDescriptor{
	{
		Name:        toolCreatePayment,
		Description: "Create a PayPal order for the given amount and return the order resource including its approval links",
		InputSchema: models.ToolInputSchema{
			Type: "object",
			Properties: map[string]models.ToolProperty{
				"amount":      {Type: "string", Description: "Amount to charge as a decimal string, e.g. 10.00"},
				"currency":    {Type: "string", Description: "ISO 4217 currency code", Default: "USD"},
				"description": {Type: "string", Description: "Description shown to the payer"},
			},
			Required: []string{"amount"},
		},
	},
	{
		Name:        toolCapturePayment,
		Description: "Capture an approved PayPal order",
		InputSchema: models.ToolInputSchema{
			Type: "object",
			Properties: map[string]models.ToolProperty{
				"orderId": {Type: "string", Description: "ID of the order to capture"},
			},
			Required: []string{"orderId"},
		},
	},
	{
		Name:        toolRefundPayment,
		Description: "Refund a captured PayPal payment, in full or for the given amount",
		InputSchema: models.ToolInputSchema{
			Type: "object",
			Properties: map[string]models.ToolProperty{
				"captureId": {Type: "string", Description: "ID of the capture to refund"},
				"amount":    {Type: "string", Description: "Amount to refund as a decimal string; omit for a full refund"},
				"currency":  {Type: "string", Description: "ISO 4217 currency code, ignored when no amount is given", Default: "USD"},
				"note":      {Type: "string", Description: "Note shown to the payer"},
			},
			Required: []string{"captureId"},
		},
	},
	{
		Name:        toolGetOrder,
		Description: "Fetch the current state of a PayPal order",
		InputSchema: models.ToolInputSchema{
			Type: "object",
			Properties: map[string]models.ToolProperty{
				"orderId": {Type: "string", Description: "ID of the order to fetch"},
			},
			Required: []string{"orderId"},
		},
	},
}

// HandleListTools returns the catalog of tools this service exposes
func HandleListTools(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, models.ToolCatalog{Tools: toolCatalog}, http.StatusOK)
}

// HandleInvokeTool dispatches a named tool invocation to the payment provider.
// A tool that runs always answers 200 with the result envelope; only requests
// that never reach the provider produce a non-2xx status.
func HandleInvokeTool(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	toolName := vars["tool_name"]

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body empty"), http.StatusBadRequest)
		return
	}

	var result models.ToolResult
	switch toolName {
	case toolCreatePayment:
		var args models.CreatePaymentArgs
		if !decodeToolArgs(w, req, &args) {
			return
		}
		result = payPalService.CreateOrder(req.Context(), args.Amount, args.Currency, args.Description)
	case toolCapturePayment:
		var args models.CapturePaymentArgs
		if !decodeToolArgs(w, req, &args) {
			return
		}
		result = payPalService.CaptureOrder(req.Context(), args.OrderID)
	case toolRefundPayment:
		var args models.RefundPaymentArgs
		if !decodeToolArgs(w, req, &args) {
			return
		}
		result = payPalService.RefundCapture(req.Context(), args.CaptureID, args.Amount, args.Currency, args.Note)
	case toolGetOrder:
		var args models.GetOrderArgs
		if !decodeToolArgs(w, req, &args) {
			return
		}
		result = payPalService.GetOrder(req.Context(), args.OrderID)
	default:
		log.ErrorR(req, fmt.Errorf("tool not found: [%s]", toolName))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("tool not found: "+toolName), http.StatusNotFound)
		return
	}

	if result.Error != "" {
		log.ErrorR(req, fmt.Errorf("tool invocation failed: [%s]", result.Error), log.Data{"tool": toolName})
	} else {
		log.InfoR(req, "tool invocation complete", log.Data{"tool": toolName, "success": result.Success})
	}

	utils.WriteJSONWithStatus(w, req, result, http.StatusOK)
}

// decodeToolArgs decodes and validates the arguments for a tool, answering
// the request itself when they cannot be dispatched
func decodeToolArgs(w http.ResponseWriter, req *http.Request, args interface{}) bool {
	err := json.NewDecoder(req.Body).Decode(args)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body invalid"), http.StatusBadRequest)
		return false
	}

	if err = validateToolArgs(args); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid tool arguments: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(fmt.Sprintf("invalid tool arguments: %v", err)), http.StatusBadRequest)
		return false
	}

	return true
}

func validateToolArgs(args interface{}) error {
	validate := validator.New()
	err := validate.RegisterValidation("amount", isDecimalAmount)
	if err != nil {
		return err
	}
	return validate.Struct(args)
}

// isDecimalAmount accepts any well-formed decimal string. The value is only
// checked, never reformatted, so the literal string reaches PayPal untouched.
func isDecimalAmount(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}
