package paymentgateway

// CreateIntentRequest describes one charge attempt. Amount is in minor
// currency units. Metadata is attached to the intent verbatim and echoed
// back by the provider on retrieval.
type CreateIntentRequest struct {
	Amount       int64
	Currency     string
	Description  string
	ReceiptEmail string
	Metadata     map[string]string
}
