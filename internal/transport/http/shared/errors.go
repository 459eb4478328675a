package shared

import (
	"errors"
	"net/http"

	"ems/internal/apperror"
	"ems/internal/platform/logger"
	"ems/internal/platform/requestctx"
	"ems/internal/transport/http/api"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation: http.StatusBadRequest,
	apperror.KindReference:  http.StatusBadRequest,
	apperror.KindConflict:   http.StatusConflict,
	apperror.KindNotFound:   http.StatusNotFound,
	apperror.KindAuth:       http.StatusUnauthorized,
}

// WriteError maps a classified error onto the response envelope.
// Unclassified errors are logged and reported as a bare 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestctx.GetRequestID(r.Context())

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if status, ok := statusByKind[appErr.Kind]; ok {
			if appErr.Cause != nil {
				logger.From(r.Context()).Debug("request failed", "kind", appErr.Kind, "cause", appErr.Cause)
			}
			api.FailField(w, status, string(appErr.Kind), appErr.Field, appErr.Message, requestID)
			return
		}
	}

	logger.From(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
}

func BadRequest(w http.ResponseWriter, r *http.Request, field, message string) {
	WriteError(w, r, apperror.Validation(field, message))
}

func RequestID(r *http.Request) string {
	return requestctx.GetRequestID(r.Context())
}
