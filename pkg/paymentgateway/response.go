package paymentgateway

// Intent statuses as reported by the provider. Only "succeeded" proves
// the charge went through; everything else is in flight or failed.
const (
	IntentStatusSucceeded = "succeeded"
)

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Description  string `json:"description"`
}

type errorResponse struct {
	Error Error `json:"error"`
}
