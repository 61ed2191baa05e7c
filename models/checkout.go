package models

// CheckoutViewData drives the browser-facing checkout result pages
type CheckoutViewData struct {
	OrderID string
	Status  string
	Amount  string
	Message string
}
