package interceptors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
)

// CallerAuthenticationInterceptor contains the config holding the shared secret
type CallerAuthenticationInterceptor struct {
	Config config.Config
}

// CallerAuthenticationIntercept checks that the caller presents the shared
// secret as a bearer token before a tool can be invoked. An empty configured
// secret disables the check entirely.
func (callerAuthenticationInterceptor CallerAuthenticationInterceptor) CallerAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sharedSecret := callerAuthenticationInterceptor.Config.SharedSecret
		if sharedSecret == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.ErrorR(r, fmt.Errorf("CallerAuthenticationInterceptor unauthorised: no bearer token supplied"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if strings.TrimPrefix(authHeader, "Bearer ") != sharedSecret {
			log.ErrorR(r, fmt.Errorf("CallerAuthenticationInterceptor unauthorised: shared secret mismatch"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
