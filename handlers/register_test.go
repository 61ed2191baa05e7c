package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/gorilla/mux"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg)
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("get-tools"), ShouldNotBeNil)
		So(router.GetRoute("invoke-tool"), ShouldNotBeNil)
		So(router.GetRoute("get-checkout-success"), ShouldNotBeNil)
		So(router.GetRoute("get-checkout-cancel"), ShouldNotBeNil)
	})
}

func TestUnitHealthCheck(t *testing.T) {
	Convey("Healthcheck returns 200", t, func() {
		req := httptest.NewRequest("GET", "/healthcheck", nil)
		w := httptest.NewRecorder()
		healthCheck(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
