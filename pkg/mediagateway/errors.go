package mediagateway

import "errors"

var (
	ErrTimeout      = errors.New("MEDIA_GATEWAY_TIMEOUT")
	ErrUnauthorized = errors.New("MEDIA_GATEWAY_UNAUTHORIZED")
	ErrServerError  = errors.New("MEDIA_GATEWAY_ERROR")
)
