package mediagateway

import "time"

// VideoAsset is one previously uploaded video as the media host reports it.
type VideoAsset struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Filename     string    `json:"filename"`
	Duration     float64   `json:"duration"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Format       string    `json:"format"`
	CreatedAt    time.Time `json:"createdAt"`
}

type listResourcesResponse struct {
	Resources []resource `json:"resources"`
}

type resource struct {
	PublicID  string    `json:"public_id"`
	SecureURL string    `json:"secure_url"`
	Format    string    `json:"format"`
	Duration  float64   `json:"duration"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
