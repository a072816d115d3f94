package model

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is one attempted charge, keyed by the payment reference the
// gateway assigned to it. Amount, currency and metadata never change after
// creation; status only moves pending -> completed.
type Transaction struct {
	PaymentRef  string            `json:"paymentIntentId"`
	UserID      string            `json:"userId"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Metadata    Metadata          `json:"metadata"`
}

// Metadata is opaque device/app/purchase info carried for reporting only.
type Metadata struct {
	PurchaseType string `json:"purchaseType"`
	AppVersion   string `json:"appVersion"`
	DeviceInfo   string `json:"deviceInfo"`
}
