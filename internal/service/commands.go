package service

import "time"

type CreatePaymentCommand struct {
	UserEmail    string `validate:"required,email"`
	UserName     string `validate:"required"`
	UserID       string `validate:"required"`
	DeviceInfo   string
	AppVersion   string
	PurchaseType string
}

type CreatePaymentResult struct {
	ClientSecret       string             `json:"clientSecret"`
	PaymentRef         string             `json:"paymentIntentId"`
	Amount             int64              `json:"amount"`
	Currency           string             `json:"currency"`
	UserDetails        UserDetails        `json:"userDetails"`
	TransactionDetails TransactionDetails `json:"transactionDetails"`
}

type UserDetails struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type TransactionDetails struct {
	Description  string    `json:"description"`
	ReceiptEmail string    `json:"receiptEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ConfirmPaymentCommand struct {
	PaymentRef string `validate:"required"`
	UserID     string `validate:"required"`
}

type ConfirmPaymentResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	PaymentRef string `json:"paymentIntentId"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}
