package corehandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/core"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/shared"
)

type Service interface {
	CreateDepartment(ctx context.Context, in core.CreateDepartmentInput) (core.Department, error)
	GetDepartment(ctx context.Context, departmentID string) (core.Department, error)
	ListDepartments(ctx context.Context) ([]core.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error

	CreateEmployee(ctx context.Context, in core.CreateEmployeeInput) (core.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (core.Employee, error)
	ListEmployees(ctx context.Context) ([]core.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, in core.UpdateEmployeeInput) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Route("/{departmentID}", func(r chi.Router) {
			r.Get("/", h.handleGetDepartment)
			r.Delete("/", h.handleDeleteDepartment)
		})
	})
}

type employeeResponse struct {
	ID             string     `json:"id"`
	EmployeeCode   string     `json:"employeeCode"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DateOfJoining  time.Time  `json:"dateOfJoining"`
	IsActive       bool       `json:"isActive"`
	DepartmentID   string     `json:"departmentId"`
	DepartmentName string     `json:"departmentName"`
	CreatedAtUTC   time.Time  `json:"createdAtUtc"`
	UpdatedAtUTC   *time.Time `json:"updatedAtUtc"`
}

func toEmployeeResponse(emp core.Employee) employeeResponse {
	return employeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		FullName:       emp.FullName(),
		Email:          emp.Email,
		Phone:          emp.Phone,
		DateOfJoining:  emp.DateOfJoining,
		IsActive:       emp.IsActive,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		CreatedAtUTC:   emp.CreatedAt,
		UpdatedAtUTC:   emp.UpdatedAt,
	}
}

type createEmployeeRequest struct {
	EmployeeCode  string `json:"employeeCode"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfJoining string `json:"dateOfJoining"`
	IsActive      *bool  `json:"isActive"`
	DepartmentID  string `json:"departmentId"`
}

type updateEmployeeRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	IsActive  *bool  `json:"isActive"`
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	out := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toEmployeeResponse(emp))
	}
	api.OK(w, out)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, toEmployeeResponse(emp))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload createEmployeeRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	joined, err := shared.ParseDate(payload.DateOfJoining)
	if err != nil {
		shared.BadRequest(w, r, "dateOfJoining", "dateOfJoining must be a valid date")
		return
	}

	emp, err := h.Service.CreateEmployee(r.Context(), core.CreateEmployeeInput{
		EmployeeCode:  payload.EmployeeCode,
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Email:         payload.Email,
		Phone:         payload.Phone,
		DateOfJoining: joined,
		IsActive:      payload.IsActive,
		DepartmentID:  payload.DepartmentID,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, emp.ID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload updateEmployeeRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	in := core.UpdateEmployeeInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
		IsActive:  true,
	}
	if payload.IsActive != nil {
		in.IsActive = *payload.IsActive
	}
	if err := h.Service.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), in); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, departments)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	dep, err := h.Service.GetDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, dep)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload createDepartmentRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	dep, err := h.Service.CreateDepartment(r.Context(), core.CreateDepartmentInput{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, dep.ID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDepartment(r.Context(), chi.URLParam(r, "departmentID")); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.NoContent(w)
}
