package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ResponseResource is the body returned for requests that never reach the
// payment provider, such as an unknown tool or arguments that fail validation
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse wraps a message in a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// WriteJSONWithStatus writes data as a json response body with the supplied
// status. Encoding failures are logged against the request; by then the
// status has already gone out.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: [%v]", err))
	}
}
