package payrollhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"ems/internal/apperror"
	"ems/internal/domain/payroll"
)

type stubService struct {
	created payroll.CreateInput
	amounts payroll.Amounts
	filter  payroll.Filter
	records []payroll.Record
	err     error
}

func (s *stubService) Create(_ context.Context, in payroll.CreateInput) (payroll.Record, error) {
	s.created = in
	if s.err != nil {
		return payroll.Record{}, s.err
	}
	return payroll.Record{ID: "sal-1"}, nil
}

func (s *stubService) Update(_ context.Context, _ string, amounts payroll.Amounts) error {
	s.amounts = amounts
	return s.err
}

func (s *stubService) Get(_ context.Context, id string) (payroll.Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrNotFound
}

func (s *stubService) List(_ context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	s.filter = filter
	return s.records, s.err
}

func (s *stubService) Delete(context.Context, string) error {
	return s.err
}

func serve(svc Service, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateSalary(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, http.MethodPost, "/salaries", `{"employeeId":"emp-1","year":2025,"month":4,"basic":1000,"allowances":150.5,"deductions":20}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	want := payroll.CreateInput{EmployeeID: "emp-1", Year: 2025, Month: 4, Amounts: payroll.Amounts{Basic: 1000, Allowances: 150.5, Deductions: 20}}
	if svc.created != want {
		t.Fatalf("unexpected input %+v", svc.created)
	}
}

func TestCreateSalaryErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "range", err: apperror.Validation("month", "month must be between 1 and 12"), want: http.StatusBadRequest},
		{name: "reference", err: payroll.ErrInvalidEmployeeRef, want: http.StatusBadRequest},
		{name: "duplicate", err: payroll.ErrDuplicate, want: http.StatusConflict},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if rec := serve(&stubService{err: tc.err}, http.MethodPost, "/salaries", `{}`); rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestGetIncludesNetPay(t *testing.T) {
	svc := &stubService{records: []payroll.Record{{ID: "sal-1", Year: 2025, Month: 1, Basic: 1000, Allowances: 200.5, Deductions: 50.25}}}
	rec := serve(svc, http.MethodGet, "/salaries/sal-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["netPay"] != 1150.25 {
		t.Fatalf("unexpected netPay %v", body["netPay"])
	}
}

func TestListParsesFilters(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, http.MethodGet, "/salaries?year=2025&month=3&employeeId=emp-1", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if svc.filter != (payroll.Filter{EmployeeID: "emp-1", Year: 2025, Month: 3}) {
		t.Fatalf("unexpected filter %+v", svc.filter)
	}

	if rec := serve(svc, http.MethodGet, "/salaries?year=twenty", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateSalaryAmounts(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, http.MethodPut, "/salaries/sal-1", `{"basic":2000,"allowances":0,"deductions":100}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.amounts != (payroll.Amounts{Basic: 2000, Deductions: 100}) {
		t.Fatalf("unexpected amounts %+v", svc.amounts)
	}

	if rec := serve(&stubService{err: payroll.ErrNotFound}, http.MethodDelete, "/salaries/x", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
