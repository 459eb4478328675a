package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

type Error struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Envelope is the body of every failed request.
type Envelope struct {
	Success   bool   `json:"success"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, id string) {
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Attachment streams a binary download.
func Attachment(w http.ResponseWriter, filename, contentType string, body []byte) {
	headers := w.Header()
	headers.Set("Content-Type", contentType)
	headers.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	headers.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Warn("write attachment failed", "err", err, "filename", filename)
	}
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailField(w http.ResponseWriter, status int, code, field, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Field: field, Message: message}, RequestID: requestID})
}
