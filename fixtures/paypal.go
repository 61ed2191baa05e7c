package fixtures

import "github.com/companieshouse/paypal.api.ch.gov.uk/models"

// CapturedOrderResponse is a trimmed order capture response in PayPal's wire format
const CapturedOrderResponse = `{
	"id": "ORDER123",
	"status": "COMPLETED",
	"purchase_units": [
		{
			"reference_id": "default",
			"payments": {
				"captures": [
					{
						"id": "CAPTURE123",
						"status": "COMPLETED",
						"amount": {"currency_code": "USD", "value": "10.00"}
					}
				]
			}
		}
	]
}`

func GetCapturedOrderResource() models.CapturedOrderResource {
	return models.CapturedOrderResource{
		ID:     "ORDER123",
		Status: "COMPLETED",
		PurchaseUnits: []models.CapturedPurchaseUnit{
			{
				ReferenceID: "default",
				Payments: &models.CapturedPayments{
					Captures: []models.CaptureResource{
						{
							ID:     "CAPTURE123",
							Status: "COMPLETED",
							Amount: &models.Amount{
								CurrencyCode: "USD",
								Value:        "10.00",
							},
						},
					},
				},
			},
		},
	}
}

func GetAccessTokenResponse(accessToken string) models.AccessTokenResponse {
	return models.AccessTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   32400,
	}
}
