package mocks

import (
	"context"

	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/stretchr/testify/mock"
)

type PaymentGateway struct {
	mock.Mock
}

func (p *PaymentGateway) CreateIntent(ctx context.Context, request paymentgateway.CreateIntentRequest) (paymentgateway.Intent, error) {
	args := p.Called(ctx, request)
	return args.Get(0).(paymentgateway.Intent), args.Error(1)
}

func (p *PaymentGateway) RetrieveIntent(ctx context.Context, intentID string) (paymentgateway.Intent, error) {
	args := p.Called(ctx, intentID)
	return args.Get(0).(paymentgateway.Intent), args.Error(1)
}
