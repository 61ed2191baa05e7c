package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const successPageTemplate = `<!DOCTYPE html>
<html>
<head><title>Payment Successful</title></head>
<body>
<h1>Payment Successful</h1>
<p>Thank you, your payment has been completed.</p>
<p>Order ID: {{.OrderID}}</p>
<p>Status: {{.Status}}</p>
{{if .Amount}}<p>Amount: {{.Amount}}</p>{{end}}
<p>You can close this window.</p>
</body>
</html>`

const errorPageTemplate = `<!DOCTYPE html>
<html>
<head><title>Payment Error</title></head>
<body>
<h1>Payment Error</h1>
<p>{{.Message}}</p>
{{if .OrderID}}<p>Order ID: {{.OrderID}}</p>{{end}}
</body>
</html>`

const cancelPageTemplate = `<!DOCTYPE html>
<html>
<head><title>Payment Cancelled</title></head>
<body>
<h1>Payment Cancelled</h1>
<p>Your payment was cancelled. No charge has been made.</p>
{{if .OrderID}}<p>Order ID: {{.OrderID}}</p>{{end}}
<p>You can close this window.</p>
</body>
</html>`

var (
	successPage = template.Must(template.New("success").Parse(successPageTemplate))
	errorPage   = template.Must(template.New("error").Parse(errorPageTemplate))
	cancelPage  = template.Must(template.New("cancel").Parse(cancelPageTemplate))
)

// HandleCheckoutSuccess is the return page the payer lands on after approving
// the order at PayPal. It captures the order named by the token query
// parameter and renders the outcome.
func HandleCheckoutSuccess(w http.ResponseWriter, req *http.Request) {
	orderID := req.URL.Query().Get("token")
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("token query parameter missing from return URL"))
		writeCheckoutPage(w, req, errorPage, models.CheckoutViewData{Message: "Missing token parameter in return URL."}, http.StatusBadRequest)
		return
	}

	log.TraceR(req, "capturing order from checkout return", log.Data{"order_id": orderID, "payer_id": req.URL.Query().Get("PayerID")})

	result := payPalService.CaptureOrder(req.Context(), orderID)

	if result.Error != "" {
		log.ErrorR(req, fmt.Errorf("error capturing order: [%s]", result.Error), log.Data{"order_id": orderID})
		writeCheckoutPage(w, req, errorPage, models.CheckoutViewData{OrderID: orderID, Message: result.Error}, http.StatusInternalServerError)
		return
	}

	if !result.Success {
		log.InfoR(req, "capture declined by PayPal", log.Data{"order_id": orderID})
		writeCheckoutPage(w, req, errorPage, models.CheckoutViewData{OrderID: orderID, Message: "The payment could not be completed. No charge has been made."}, http.StatusOK)
		return
	}

	var capturedOrder models.CapturedOrderResource
	err := json.Unmarshal(result.Data, &capturedOrder)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing captured order: [%v]", err), log.Data{"order_id": orderID})
		writeCheckoutPage(w, req, errorPage, models.CheckoutViewData{OrderID: orderID, Message: "The payment was captured but the response could not be read."}, http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "order captured from checkout return", log.Data{"order_id": orderID, "status": capturedOrder.Status})

	writeCheckoutPage(w, req, successPage, mappers.MapCapturedOrderToCheckoutView(orderID, capturedOrder), http.StatusOK)
}

// HandleCheckoutCancel is the page the payer lands on after cancelling at
// PayPal. Nothing is captured so there is nothing to do beyond telling them.
func HandleCheckoutCancel(w http.ResponseWriter, req *http.Request) {
	orderID := req.URL.Query().Get("token")
	log.TraceR(req, "checkout cancelled by payer", log.Data{"order_id": orderID})
	writeCheckoutPage(w, req, cancelPage, models.CheckoutViewData{OrderID: orderID}, http.StatusOK)
}

func writeCheckoutPage(w http.ResponseWriter, req *http.Request, page *template.Template, data models.CheckoutViewData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := page.Execute(w, data)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing checkout page: [%v]", err))
	}
}
