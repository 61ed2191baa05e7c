package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCORSIntercept(t *testing.T) {

	Convey("Cross-origin headers are set on ordinary requests", t, func() {
		req, _ := http.NewRequest("GET", "/tools", nil)
		w := httptest.NewRecorder()
		CORSIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		So(w.Header().Get("Access-Control-Allow-Methods"), ShouldEqual, "GET, POST, OPTIONS")
		So(w.Header().Get("Access-Control-Allow-Headers"), ShouldEqual, "Content-Type, Authorization")
	})

	Convey("Preflight requests are answered without reaching the handler", t, func() {
		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			handlerCalled = true
		})

		req, _ := http.NewRequest("OPTIONS", "/tools/create_paypal_payment", nil)
		w := httptest.NewRecorder()
		CORSIntercept(next).ServeHTTP(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		So(handlerCalled, ShouldBeFalse)
	})

}
