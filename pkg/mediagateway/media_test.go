package mediagateway_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/clipora/video-backend/pkg/mediagateway"
	"github.com/clipora/video-backend/pkg/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMediaGateway_ListVideoAssets(t *testing.T) {
	cfg := mediagateway.Config{
		BaseURL:   "https://api.media.test",
		CloudName: "clipora",
		APIKey:    "key",
		APISecret: "secret",
		Timeout:   30 * time.Second,
	}

	listURL := "https://api.media.test/v1_1/clipora/resources/video?max_results=100"
	headers := map[string]string{
		// base64("key:secret")
		"Authorization": "Basic a2V5OnNlY3JldA==",
	}

	t.Run("maps resources to video assets", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		mg := mediagateway.NewMediaGateway(cfg, mockClient)

		body := `{
			"resources": [
				{
					"public_id": "clips/intro",
					"secure_url": "https://res.cloudinary.com/clipora/video/upload/clips/intro.mp4",
					"format": "mp4",
					"duration": 12.5,
					"width": 1920,
					"height": 1080,
					"created_at": "2026-01-10T12:00:00Z"
				}
			]
		}`

		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), listURL, headers).Return(successResponse, nil)

		assets, err := mg.ListVideoAssets(context.Background())

		assert.NoError(t, err)
		assert.Len(t, assets, 1)
		assert.Equal(t, "clips/intro", assets[0].ID)
		assert.Equal(t, "intro.mp4", assets[0].Filename)
		assert.Equal(t, "https://res.cloudinary.com/clipora/video/upload/so_0/clips/intro.jpg", assets[0].ThumbnailURL)
		assert.Equal(t, 12.5, assets[0].Duration)
		assert.Equal(t, 1920, assets[0].Width)
		mockClient.AssertExpectations(t)
	})

	t.Run("empty resource list yields empty slice", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		mg := mediagateway.NewMediaGateway(cfg, mockClient)

		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"resources": []}`)),
		}

		mockClient.On("Get", context.Background(), listURL, headers).Return(successResponse, nil)

		assets, err := mg.ListVideoAssets(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, assets)
		mockClient.AssertExpectations(t)
	})

	t.Run("unauthorized maps to unauthorized error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		mg := mediagateway.NewMediaGateway(cfg, mockClient)

		errorResponse := &http.Response{
			StatusCode: 401,
			Body:       io.NopCloser(strings.NewReader(`{"error": {"message": "invalid credentials"}}`)),
		}

		mockClient.On("Get", context.Background(), listURL, headers).Return(errorResponse, nil)

		_, err := mg.ListVideoAssets(context.Background())

		assert.ErrorIs(t, err, mediagateway.ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid credentials")
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout maps to timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		mg := mediagateway.NewMediaGateway(cfg, mockClient)

		mockClient.On("Get", context.Background(), listURL,
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := mg.ListVideoAssets(context.Background())

		assert.ErrorIs(t, err, mediagateway.ErrTimeout)
		mockClient.AssertExpectations(t)
	})

	t.Run("server error maps to server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		mg := mediagateway.NewMediaGateway(cfg, mockClient)

		errorResponse := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Get", context.Background(), listURL, headers).Return(errorResponse, nil)

		_, err := mg.ListVideoAssets(context.Background())

		assert.ErrorIs(t, err, mediagateway.ErrServerError)
		mockClient.AssertExpectations(t)
	})
}
