package response

// ErrorBody is the JSON body returned with every non-2xx status
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"` // underlying error, write paths only
}

// Error returns an error body carrying only the client-facing message
func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// ErrorWithDetails returns an error body that also echoes the underlying error string
func ErrorWithDetails(message string, err error) ErrorBody {
	body := ErrorBody{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	return body
}

// Success is the acknowledgement body used by status toggles and deletes
type Success struct {
	Success bool `json:"success"`
}

// Message wraps a plain confirmation message
type Message struct {
	Message string `json:"message"`
}
