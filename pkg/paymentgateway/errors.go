package paymentgateway

// Error is the provider's own error payload: a machine type tag plus a
// human message. It is carried up to the API caller unchanged.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

var ErrTimeout = Error{Type: "timeout_error", Message: "payment provider request timed out"}
