package v1

type CreatePaymentRequest struct {
	UserEmail    string `json:"userEmail"`
	UserName     string `json:"userName"`
	UserID       string `json:"userId"`
	DeviceInfo   string `json:"deviceInfo,omitempty"`
	AppVersion   string `json:"appVersion,omitempty"`
	PurchaseType string `json:"purchaseType,omitempty"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	UserID          string `json:"userId"`
}
