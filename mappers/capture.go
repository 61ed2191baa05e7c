package mappers

import "github.com/companieshouse/paypal.api.ch.gov.uk/models"

// MapCapturedOrderToCheckoutView flattens a captured order into the fields
// the success page renders. The amount comes from the first capture of the
// first purchase unit and keeps PayPal's own formatting.
func MapCapturedOrderToCheckoutView(orderID string, capturedOrder models.CapturedOrderResource) models.CheckoutViewData {
	viewData := models.CheckoutViewData{
		OrderID: orderID,
		Status:  capturedOrder.Status,
	}
	if capturedOrder.ID != "" {
		viewData.OrderID = capturedOrder.ID
	}

	if len(capturedOrder.PurchaseUnits) == 0 {
		return viewData
	}
	payments := capturedOrder.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Captures) == 0 {
		return viewData
	}
	amount := payments.Captures[0].Amount
	if amount == nil {
		return viewData
	}

	viewData.Amount = amount.Value + " " + amount.CurrencyCode
	return viewData
}
