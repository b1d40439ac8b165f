package dto

const (
	statusSuccess = "success"
	statusError   = "error"
)

// SuccessEnvelope is the body of every successful API response.
type SuccessEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorEnvelope is the body of every failed API response.
type ErrorEnvelope struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Success wraps data and message into a success envelope.
func Success(data any, message string) SuccessEnvelope {
	return SuccessEnvelope{Status: statusSuccess, Data: data, Message: message}
}

// Failure wraps message and optional violations into an error envelope.
func Failure(message string, violations ...string) ErrorEnvelope {
	return ErrorEnvelope{Status: statusError, Message: message, Errors: violations}
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
