package httputils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"tush00nka/bbbab_forums/api/response"
)

// RequestIDHeader carries the id the server assigned to a request.
const RequestIDHeader = "X-Request-ID"

// ResponseError writes message with the request id already set on w.
func ResponseError(w http.ResponseWriter, statusCode int, message string) {
	ResponseJSON(w, statusCode, response.ErrorResponse{
		Message:   message,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}

func ResponseJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithFields(logrus.Fields{
			"status":     statusCode,
			"request_id": w.Header().Get(RequestIDHeader),
		}).WithError(err).Error("failed to encode JSON response")
	}
}
