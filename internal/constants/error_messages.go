package constants

const (
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodePaymentNotCompleted = "PAYMENT_NOT_COMPLETED"
	ErrCodeGatewayError        = "GATEWAY_ERROR"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeRecordNotFound      = "LEDGER_RECORD_NOT_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgMissingUserInfo     = "missing required user information"
	ErrMsgInvalidEmailFormat  = "invalid email format"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgRecordNotFound      = "no ledger record for payment"
	ErrMsgInternalError       = "internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgGatewayUnavailable  = "payment provider unavailable"
	ErrMsgMissingConfirmation = "paymentIntentId and userId are required"
)

var errorMessages = map[string]string{
	ErrCodeUserNotFound:       ErrMsgUserNotFound,
	ErrCodeRecordNotFound:     ErrMsgRecordNotFound,
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeGatewayError:       ErrMsgGatewayUnavailable,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodePaymentNotCompleted, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeUserNotFound, ErrCodeRecordNotFound:
		return 404
	case ErrCodeGatewayError:
		return 502
	default:
		return 500
	}
}
