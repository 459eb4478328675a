package payrollhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/payroll"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/shared"
)

type Service interface {
	Create(ctx context.Context, in payroll.CreateInput) (payroll.Record, error)
	Update(ctx context.Context, id string, amounts payroll.Amounts) error
	Get(ctx context.Context, id string) (payroll.Record, error)
	List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{salaryID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

type salaryResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	EmployeeCode   string     `json:"employeeCode"`
	EmployeeName   string     `json:"employeeName"`
	DepartmentName string     `json:"departmentName"`
	Year           int        `json:"year"`
	Month          int        `json:"month"`
	Basic          float64    `json:"basic"`
	Allowances     float64    `json:"allowances"`
	Deductions     float64    `json:"deductions"`
	NetPay         float64    `json:"netPay"`
	CreatedAtUTC   time.Time  `json:"createdAtUtc"`
	UpdatedAtUTC   *time.Time `json:"updatedAtUtc"`
}

func toResponse(rec payroll.Record) salaryResponse {
	return salaryResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeCode:   rec.EmployeeCode,
		EmployeeName:   rec.EmployeeName,
		DepartmentName: rec.DepartmentName,
		Year:           rec.Year,
		Month:          rec.Month,
		Basic:          rec.Basic,
		Allowances:     rec.Allowances,
		Deductions:     rec.Deductions,
		NetPay:         rec.NetPay(),
		CreatedAtUTC:   rec.CreatedAt,
		UpdatedAtUTC:   rec.UpdatedAt,
	}
}

type amountsRequest struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
}

func (a amountsRequest) amounts() payroll.Amounts {
	return payroll.Amounts{Basic: a.Basic, Allowances: a.Allowances, Deductions: a.Deductions}
}

type createRequest struct {
	EmployeeID string `json:"employeeId"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	amountsRequest
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	year, err := shared.QueryInt(r, "year")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	month, err := shared.QueryInt(r, "month")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	records, err := h.Service.List(r.Context(), payroll.Filter{
		EmployeeID:   shared.QueryString(r, "employeeId"),
		DepartmentID: shared.QueryString(r, "departmentId"),
		Year:         year,
		Month:        month,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	out := make([]salaryResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	api.OK(w, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "salaryID"))
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
	rec, err := h.Service.Create(r.Context(), payroll.CreateInput{
		EmployeeID: payload.EmployeeID,
		Year:       payload.Year,
		Month:      payload.Month,
		Amounts:    payload.amounts(),
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, rec.ID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload amountsRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	if err := h.Service.Update(r.Context(), chi.URLParam(r, "salaryID"), payload.amounts()); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "salaryID")); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}
