package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var payPalService service.PaymentProviderService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	payPalService = service.NewPayPalService(cfg)

	ca := &interceptors.CallerAuthenticationInterceptor{
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The tool endpoints answer JSON and carry CORS
	// headers, the checkout pages are plain HTML for the payer's browser, and
	// only tool invocations check the shared secret. This allows
	// per-subrouter middleware.

	// list-tools endpoint should not be intercepted by the caller auth interceptor
	toolsRouter := mainRouter.PathPrefix("/tools").Subrouter()
	toolsRouter.HandleFunc("", HandleListTools).Methods("GET", "OPTIONS").Name("get-tools")

	// invoke-tool endpoint needs caller auth, so needs to be it's own subrouter
	invokeToolRouter := toolsRouter.PathPrefix("/{tool_name}").Subrouter()
	invokeToolRouter.HandleFunc("", HandleInvokeTool).Methods("POST", "OPTIONS").Name("invoke-tool")

	// checkout pages are hit by the payer's browser after PayPal redirects back,
	// so carry neither CORS headers nor caller auth
	checkoutRouter := mainRouter.PathPrefix("/").Subrouter()
	checkoutRouter.HandleFunc("/success", HandleCheckoutSuccess).Methods("GET").Name("get-checkout-success")
	checkoutRouter.HandleFunc("/cancel", HandleCheckoutCancel).Methods("GET").Name("get-checkout-cancel")

	// Set middleware for subrouters. CORS runs ahead of caller auth so
	// preflight requests are answered rather than rejected.
	toolsRouter.Use(log.Handler, interceptors.CORSIntercept)
	invokeToolRouter.Use(ca.CallerAuthenticationIntercept)
	checkoutRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
