package reportshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/reports"
	"ems/internal/platform/logger"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/shared"
)

type Service interface {
	Render(ctx context.Context, kind reports.Kind, format reports.Format, filter reports.Filter) (reports.Artifact, error)
}

// Recorder counts generated reports. Optional.
type Recorder interface {
	RecordReport(kind, format string)
}

type Handler struct {
	Service  Service
	Recorder Recorder
}

func NewHandler(service Service, recorder Recorder) *Handler {
	return &Handler{Service: service, Recorder: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/{kind}/{format}", h.handleReport)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	kind, ok := reports.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "unknown report", shared.RequestID(r))
		return
	}
	format, ok := reports.ParseFormat(chi.URLParam(r, "format"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "unknown report format", shared.RequestID(r))
		return
	}

	filter, err := parseFilter(r, kind)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	artifact, err := h.Service.Render(r.Context(), kind, format, filter)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	if h.Recorder != nil {
		h.Recorder.RecordReport(string(kind), string(format))
	}
	logger.From(r.Context()).Info("report generated",
		"kind", kind,
		"format", format,
		"filename", artifact.Filename,
		"bytes", len(artifact.Body),
	)
	api.Attachment(w, artifact.Filename, artifact.ContentType, artifact.Body)
}

func parseFilter(r *http.Request, kind reports.Kind) (reports.Filter, error) {
	var filter reports.Filter
	switch kind {
	case reports.KindAttendance:
		from, err := shared.QueryDate(r, "from")
		if err != nil {
			return filter, err
		}
		to, err := shared.QueryDate(r, "to")
		if err != nil {
			return filter, err
		}
		if from != nil {
			filter.From = *from
		}
		if to != nil {
			filter.To = *to
		}
	case reports.KindSalary:
		year, err := shared.QueryInt(r, "year")
		if err != nil {
			return filter, err
		}
		month, err := shared.QueryInt(r, "month")
		if err != nil {
			return filter, err
		}
		filter.Year, filter.Month = year, month
	}
	return filter, nil
}
