package response

// Envelope is the error payload shape shared by middleware responses.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Error(code, message string, details interface{}) Envelope {
	return Envelope{
		Code:    code,
		Message: message,
		Details: details,
	}
}
