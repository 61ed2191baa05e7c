package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/paypal.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCheckoutSuccess(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Token query parameter missing", t, func() {
		payPalService = service.NewMockPaymentProviderService(mockCtrl)

		req := httptest.NewRequest("GET", "/success", nil)
		w := httptest.NewRecorder()
		HandleCheckoutSuccess(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
		So(w.Body.String(), ShouldContainSubstring, "Missing token parameter")
	})

	Convey("Order captured successfully", t, func() {
		mock := service.NewMockPaymentProviderService(mockCtrl)
		payPalService = mock
		mock.EXPECT().CaptureOrder(gomock.Any(), "ORDER123").Return(models.ToolResult{
			Success: true,
			Data:    json.RawMessage(fixtures.CapturedOrderResponse),
		})

		req := httptest.NewRequest("GET", "/success?token=ORDER123&PayerID=PAYER456", nil)
		w := httptest.NewRecorder()
		HandleCheckoutSuccess(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
		So(w.Body.String(), ShouldContainSubstring, "Payment Successful")
		So(w.Body.String(), ShouldContainSubstring, "ORDER123")
		So(w.Body.String(), ShouldContainSubstring, "COMPLETED")
		So(w.Body.String(), ShouldContainSubstring, "10.00 USD")
	})

	Convey("Capture declined by PayPal", t, func() {
		mock := service.NewMockPaymentProviderService(mockCtrl)
		payPalService = mock
		mock.EXPECT().CaptureOrder(gomock.Any(), "ORDER123").Return(models.ToolResult{
			Success: false,
			Data:    json.RawMessage(`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"INSTRUMENT_DECLINED"}]}`),
		})

		req := httptest.NewRequest("GET", "/success?token=ORDER123", nil)
		w := httptest.NewRecorder()
		HandleCheckoutSuccess(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "Payment Error")
		So(w.Body.String(), ShouldContainSubstring, "The payment could not be completed. No charge has been made.")
	})

	Convey("Capture request fails outright", t, func() {
		mock := service.NewMockPaymentProviderService(mockCtrl)
		payPalService = mock
		mock.EXPECT().CaptureOrder(gomock.Any(), "ORDER123").Return(models.ToolResult{
			Success: false,
			Error:   "Failed to capture PayPal payment: failed to obtain access token: status [401] back from PayPal",
		})

		req := httptest.NewRequest("GET", "/success?token=ORDER123", nil)
		w := httptest.NewRecorder()
		HandleCheckoutSuccess(w, req)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "Payment Error")
		So(w.Body.String(), ShouldContainSubstring, "Failed to capture PayPal payment")
	})

	Convey("Captured order body unreadable", t, func() {
		mock := service.NewMockPaymentProviderService(mockCtrl)
		payPalService = mock
		mock.EXPECT().CaptureOrder(gomock.Any(), "ORDER123").Return(models.ToolResult{
			Success: true,
			Data:    json.RawMessage(`"capture complete"`),
		})

		req := httptest.NewRequest("GET", "/success?token=ORDER123", nil)
		w := httptest.NewRecorder()
		HandleCheckoutSuccess(w, req)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "Payment Error")
	})
}

func TestUnitHandleCheckoutCancel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Cancel page rendered without touching PayPal", t, func() {
		payPalService = service.NewMockPaymentProviderService(mockCtrl)

		req := httptest.NewRequest("GET", "/cancel?token=ORDER123", nil)
		w := httptest.NewRecorder()
		HandleCheckoutCancel(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
		So(w.Body.String(), ShouldContainSubstring, "Payment Cancelled")
		So(w.Body.String(), ShouldContainSubstring, "No charge has been made")
		So(w.Body.String(), ShouldContainSubstring, "ORDER123")
	})
}
