package response

// ErrorResponse is the body of every failed request. RequestID matches the
// X-Request-ID response header so a client report can be found in the logs.
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
