package response_models

// OperationError is the typed domain error carried inside an otherwise
// successful response. Codes are scoped per operation; see the constants
// next to each envelope.
type OperationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewOperationError(code, message string) *OperationError {
	return &OperationError{Code: code, Message: message}
}
