package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"tush00nka/bbbab_forums/internal/pkg/httputils"
	"tush00nka/bbbab_forums/internal/service"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyMember):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotAMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes err as a request-level failure. Domain errors
// keep their message; anything else is logged and hidden.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("unhandled service error")
		httputils.ResponseError(w, status, "internal server error")
		return
	}
	httputils.ResponseError(w, status, err.Error())
}
