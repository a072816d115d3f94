package paymentgateway_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/clipora/video-backend/pkg/mocks"
	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchForm(check func(url.Values) bool) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		reader, ok := body.(*strings.Reader)
		if !ok {
			return false
		}

		raw, err := io.ReadAll(reader)
		if err != nil {
			return false
		}
		reader.Seek(0, io.SeekStart)

		form, err := url.ParseQuery(string(raw))
		if err != nil {
			return false
		}

		return check(form)
	})
}

func TestPaymentGateway_CreateIntent(t *testing.T) {
	cfg := paymentgateway.Config{
		BaseURL: "https://api.payment.test",
		APIKey:  "sk_test_123",
		Timeout: 30 * time.Second,
	}

	intentsURL := "https://api.payment.test/v1/payment_intents"
	headers := map[string]string{
		"Authorization": "Bearer sk_test_123",
		"Content-Type":  "application/x-www-form-urlencoded",
	}

	request := paymentgateway.CreateIntentRequest{
		Amount:       999,
		Currency:     "usd",
		Description:  "one-time unlock",
		ReceiptEmail: "a@b.com",
		Metadata:     map[string]string{"userId": "u1"},
	}

	t.Run("successful create decodes intent", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		body := `{
			"id": "pi_123",
			"client_secret": "pi_123_secret_456",
			"status": "requires_payment_method",
			"amount": 999,
			"currency": "usd",
			"description": "one-time unlock"
		}`

		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Post", context.Background(), intentsURL, matchForm(func(form url.Values) bool {
			return form.Get("amount") == "999" &&
				form.Get("currency") == "usd" &&
				form.Get("receipt_email") == "a@b.com" &&
				form.Get("metadata[userId]") == "u1" &&
				form.Get("automatic_payment_methods[enabled]") == "true"
		}), headers).Return(successResponse, nil)

		intent, err := pg.CreateIntent(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)
		assert.Equal(t, int64(999), intent.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("provider error decodes type and message", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		body := `{"error": {"type": "card_error", "message": "Your card was declined."}}`
		errorResponse := &http.Response{
			StatusCode: 402,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Post", context.Background(), intentsURL, mock.Anything,
			headers).Return(errorResponse, nil)

		_, err := pg.CreateIntent(context.Background(), request)

		var gatewayErr paymentgateway.Error
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, "card_error", gatewayErr.Type)
		assert.Equal(t, "Your card was declined.", gatewayErr.Message)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout maps to timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		mockClient.On("Post", context.Background(), intentsURL, mock.Anything,
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := pg.CreateIntent(context.Background(), request)

		assert.Equal(t, paymentgateway.ErrTimeout, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("network error passes through", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		networkErr := errors.New("network connection failed")
		mockClient.On("Post", context.Background(), intentsURL, mock.Anything,
			headers).Return((*http.Response)(nil), networkErr)

		_, err := pg.CreateIntent(context.Background(), request)

		assert.Equal(t, networkErr, err)
		mockClient.AssertExpectations(t)
	})
}

func TestPaymentGateway_RetrieveIntent(t *testing.T) {
	cfg := paymentgateway.Config{
		BaseURL: "https://api.payment.test",
		APIKey:  "sk_test_123",
		Timeout: 30 * time.Second,
	}

	retrieveURL := "https://api.payment.test/v1/payment_intents/pi_123"
	headers := map[string]string{"Authorization": "Bearer sk_test_123"}

	t.Run("successful retrieve decodes status and amount", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		body := `{"id": "pi_123", "status": "succeeded", "amount": 999, "currency": "usd"}`
		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), retrieveURL, headers).Return(successResponse, nil)

		intent, err := pg.RetrieveIntent(context.Background(), "pi_123")

		assert.NoError(t, err)
		assert.Equal(t, paymentgateway.IntentStatusSucceeded, intent.Status)
		assert.Equal(t, int64(999), intent.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("unknown intent decodes provider error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		body := `{"error": {"type": "invalid_request_error", "message": "No such payment_intent: 'pi_123'"}}`
		errorResponse := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), retrieveURL, headers).Return(errorResponse, nil)

		_, err := pg.RetrieveIntent(context.Background(), "pi_123")

		var gatewayErr paymentgateway.Error
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, "invalid_request_error", gatewayErr.Type)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout maps to timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		pg := paymentgateway.NewPaymentGateway(cfg, mockClient)

		mockClient.On("Get", context.Background(), retrieveURL,
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := pg.RetrieveIntent(context.Background(), "pi_123")

		assert.Equal(t, paymentgateway.ErrTimeout, err)
		mockClient.AssertExpectations(t)
	})
}
