package paymentgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/clipora/video-backend/pkg/httpclient"
)

const intentsEndpoint = "/v1/payment_intents"

// PaymentGateway drives the provider's payment-intent flow. CreateIntent
// opens a charge and hands back the client secret the app needs to finish
// it; RetrieveIntent re-reads the authoritative intent state by id.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, request CreateIntentRequest) (Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (Intent, error)
}

type paymentGateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewPaymentGateway(cfg Config, client httpclient.HTTPClient) PaymentGateway {
	return &paymentGateway{config: cfg, client: client}
}

func (p *paymentGateway) CreateIntent(ctx context.Context, request CreateIntentRequest) (Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(request.Amount, 10))
	form.Set("currency", request.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	if request.Description != "" {
		form.Set("description", request.Description)
	}

	if request.ReceiptEmail != "" {
		form.Set("receipt_email", request.ReceiptEmail)
	}

	for key, value := range request.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + p.config.APIKey,
		"Content-Type":  "application/x-www-form-urlencoded",
	}

	resp, err := p.client.Post(ctx, p.config.BaseURL+intentsEndpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Intent{}, ErrTimeout
		}

		return Intent{}, err
	}

	defer resp.Body.Close()

	return decodeIntent(resp)
}

func (p *paymentGateway) RetrieveIntent(ctx context.Context, intentID string) (Intent, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + p.config.APIKey,
	}

	resp, err := p.client.Get(ctx, p.config.BaseURL+intentsEndpoint+"/"+url.PathEscape(intentID), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Intent{}, ErrTimeout
		}

		return Intent{}, err
	}

	defer resp.Body.Close()

	return decodeIntent(resp)
}

func decodeIntent(resp *http.Response) (Intent, error) {
	if resp.StatusCode == http.StatusOK {
		var intent Intent
		if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
			return Intent{}, fmt.Errorf("decoding error: %w", err)
		}

		return intent, nil
	}

	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return Intent{}, Error{Type: "api_error", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	return Intent{}, errResp.Error
}
