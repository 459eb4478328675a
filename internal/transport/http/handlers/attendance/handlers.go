package attendancehandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/apperror"
	"ems/internal/domain/attendance"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, in attendance.CreateInput) (attendance.Record, error)
	Update(ctx context.Context, id string, in attendance.UpdateInput) error
	Get(ctx context.Context, id string) (attendance.Record, error)
	List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{attendanceID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

type attendanceResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	EmployeeCode   string     `json:"employeeCode"`
	EmployeeName   string     `json:"employeeName"`
	DepartmentName string     `json:"departmentName"`
	Date           string     `json:"date"`
	Status         int        `json:"status"`
	StatusName     string     `json:"statusName"`
	CheckIn        *string    `json:"checkIn"`
	CheckOut       *string    `json:"checkOut"`
	CreatedAtUTC   time.Time  `json:"createdAtUtc"`
	UpdatedAtUTC   *time.Time `json:"updatedAtUtc"`
}

func toResponse(rec attendance.Record) attendanceResponse {
	return attendanceResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeCode:   rec.EmployeeCode,
		EmployeeName:   rec.EmployeeName,
		DepartmentName: rec.DepartmentName,
		Date:           rec.Date.Format(shared.DateLayout),
		Status:         rec.Status.Code(),
		StatusName:     string(rec.Status),
		CheckIn:        clockString(rec.CheckIn),
		CheckOut:       clockString(rec.CheckOut),
		CreatedAtUTC:   rec.CreatedAt,
		UpdatedAtUTC:   rec.UpdatedAt,
	}
}

func clockString(c *attendance.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

type createRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Status     int     `json:"status"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
}

type updateRequest struct {
	Status   int     `json:"status"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// statusFromWire leaves unknown codes empty so the service reports them in
// its own validation order.
func statusFromWire(code int) attendance.Status {
	status, _ := attendance.StatusFromCode(code)
	return status
}

func parseClock(field string, raw *string) (*attendance.Clock, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	c, err := attendance.ParseClock(*raw)
	if err != nil {
		return nil, apperror.Validation(field, field+" must be a time in HH:MM format")
	}
	return &c, nil
}

func parseTimes(checkIn, checkOut *string) (*attendance.Clock, *attendance.Clock, error) {
	in, err := parseClock("checkIn", checkIn)
	if err != nil {
		return nil, nil, err
	}
	out, err := parseClock("checkOut", checkOut)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	from, err := shared.QueryDate(r, "from")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	to, err := shared.QueryDate(r, "to")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	records, err := h.Service.List(r.Context(), attendance.Filter{
		From:         from,
		To:           to,
		EmployeeID:   shared.QueryString(r, "employeeId"),
		DepartmentID: shared.QueryString(r, "departmentId"),
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	out := make([]attendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	api.OK(w, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "attendanceID"))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, toResponse(rec))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		shared.BadRequest(w, r, "date", "date must be a valid date in YYYY-MM-DD format")
		return
	}
	checkIn, checkOut, err := parseTimes(payload.CheckIn, payload.CheckOut)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	rec, err := h.Service.Create(r.Context(), attendance.CreateInput{
		EmployeeID: payload.EmployeeID,
		Date:       date,
		Status:     statusFromWire(payload.Status),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, rec.ID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload updateRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	checkIn, checkOut, err := parseTimes(payload.CheckIn, payload.CheckOut)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	err = h.Service.Update(r.Context(), chi.URLParam(r, "attendanceID"), attendance.UpdateInput{
		Status:   statusFromWire(payload.Status),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "attendanceID")); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}
