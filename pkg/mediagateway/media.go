package mediagateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/clipora/video-backend/pkg/httpclient"
)

const deliveryBaseURL = "https://res.cloudinary.com"

// MediaGateway lists previously uploaded video assets from the media host.
type MediaGateway interface {
	ListVideoAssets(ctx context.Context) ([]VideoAsset, error)
}

type mediaGateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewMediaGateway(cfg Config, client httpclient.HTTPClient) MediaGateway {
	return &mediaGateway{config: cfg, client: client}
}

func (m *mediaGateway) ListVideoAssets(ctx context.Context) ([]VideoAsset, error) {
	endpoint := fmt.Sprintf("%s/v1_1/%s/resources/video?max_results=100", m.config.BaseURL, m.config.CloudName)

	credentials := base64.StdEncoding.EncodeToString([]byte(m.config.APIKey + ":" + m.config.APISecret))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}

	resp, err := m.client.Get(ctx, endpoint, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}

		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("media host returned %d: %s: %w", resp.StatusCode, errResp.Error.Message, mapStatusToError(resp.StatusCode))
		}

		return nil, mapStatusToError(resp.StatusCode)
	}

	var listResp listResourcesResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	assets := make([]VideoAsset, 0, len(listResp.Resources))
	for _, res := range listResp.Resources {
		assets = append(assets, m.toAsset(res))
	}

	return assets, nil
}

func (m *mediaGateway) toAsset(res resource) VideoAsset {
	return VideoAsset{
		ID:           res.PublicID,
		URL:          res.SecureURL,
		ThumbnailURL: m.thumbnailURL(res.PublicID),
		Filename:     path.Base(res.PublicID) + "." + res.Format,
		Duration:     res.Duration,
		Width:        res.Width,
		Height:       res.Height,
		Format:       res.Format,
		CreatedAt:    res.CreatedAt,
	}
}

// thumbnailURL asks the host's transformation pipeline for the first frame
// of the video as a jpg.
func (m *mediaGateway) thumbnailURL(publicID string) string {
	return fmt.Sprintf("%s/%s/video/upload/so_0/%s.jpg", deliveryBaseURL, m.config.CloudName, publicID)
}

func mapStatusToError(statusCode int) error {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return ErrUnauthorized
	}

	return ErrServerError
}
