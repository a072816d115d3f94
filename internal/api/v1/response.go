package v1

import "github.com/clipora/video-backend/pkg/mediagateway"

type ConfirmPaymentResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

type PaymentDetails struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
}

type ListVideosResponse struct {
	Videos []mediagateway.VideoAsset `json:"videos"`
}
