package mappers

import (
	"testing"

	"github.com/companieshouse/paypal.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapCapturedOrderToCheckoutView(t *testing.T) {

	Convey("Maps a captured order with a capture amount", t, func() {
		capturedOrder := fixtures.GetCapturedOrderResource()

		viewData := MapCapturedOrderToCheckoutView("ORDER123", capturedOrder)

		So(viewData.OrderID, ShouldEqual, "ORDER123")
		So(viewData.Status, ShouldEqual, "COMPLETED")
		So(viewData.Amount, ShouldEqual, "10.00 USD")
	})

	Convey("Prefers the order ID from the captured order body", t, func() {
		capturedOrder := models.CapturedOrderResource{
			ID:     "ORDER456",
			Status: "COMPLETED",
		}

		viewData := MapCapturedOrderToCheckoutView("ORDER123", capturedOrder)

		So(viewData.OrderID, ShouldEqual, "ORDER456")
	})

	Convey("Falls back to the request order ID when the body has none", t, func() {
		capturedOrder := models.CapturedOrderResource{
			Status: "COMPLETED",
		}

		viewData := MapCapturedOrderToCheckoutView("ORDER123", capturedOrder)

		So(viewData.OrderID, ShouldEqual, "ORDER123")
	})

	Convey("Leaves the amount empty when the order has no purchase units", t, func() {
		capturedOrder := models.CapturedOrderResource{
			ID:     "ORDER123",
			Status: "COMPLETED",
		}

		viewData := MapCapturedOrderToCheckoutView("ORDER123", capturedOrder)

		So(viewData.Amount, ShouldBeEmpty)
	})

	Convey("Leaves the amount empty when the purchase unit has no captures", t, func() {
		capturedOrder := models.CapturedOrderResource{
			ID:     "ORDER123",
			Status: "COMPLETED",
			PurchaseUnits: []models.CapturedPurchaseUnit{
				{ReferenceID: "default"},
			},
		}

		viewData := MapCapturedOrderToCheckoutView("ORDER123", capturedOrder)

		So(viewData.Amount, ShouldBeEmpty)
	})
}
