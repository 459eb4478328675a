package attendancehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/attendance"
)

type stubService struct {
	created attendance.CreateInput
	updated attendance.UpdateInput
	filter  attendance.Filter
	records []attendance.Record
	err     error
}

func (s *stubService) Create(_ context.Context, in attendance.CreateInput) (attendance.Record, error) {
	s.created = in
	if s.err != nil {
		return attendance.Record{}, s.err
	}
	return attendance.Record{ID: "att-1"}, nil
}

func (s *stubService) Update(_ context.Context, _ string, in attendance.UpdateInput) error {
	s.updated = in
	return s.err
}

func (s *stubService) Get(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (s *stubService) List(_ context.Context, filter attendance.Filter) ([]attendance.Record, error) {
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

func TestCreateMapsStatusAndTimes(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, http.MethodPost, "/attendance", `{"employeeId":"emp-1","date":"2025-03-04","status":3,"checkIn":"09:15","checkOut":null}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.created.Status != attendance.StatusHalfDay {
		t.Fatalf("unexpected status %q", svc.created.Status)
	}
	if svc.created.CheckIn == nil || *svc.created.CheckIn != attendance.NewClock(9, 15) || svc.created.CheckOut != nil {
		t.Fatalf("unexpected times %+v %+v", svc.created.CheckIn, svc.created.CheckOut)
	}
	if !svc.created.Date.Equal(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", svc.created.Date)
	}
}

func TestCreateUnknownStatusReachesService(t *testing.T) {
	svc := &stubService{err: attendance.ErrInvalidStatus}
	rec := serve(svc, http.MethodPost, "/attendance", `{"employeeId":"emp-1","date":"2025-03-04","status":9}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.created.Status != "" {
		t.Fatalf("expected empty status for unknown code, got %q", svc.created.Status)
	}
}

func TestCreateRejectsMalformedTime(t *testing.T) {
	rec := serve(&stubService{}, http.MethodPost, "/attendance", `{"employeeId":"emp-1","date":"2025-03-04","status":1,"checkIn":"9am"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "checkIn") {
		t.Fatalf("expected checkIn validation error, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	rec := serve(&stubService{err: attendance.ErrDuplicate}, http.MethodPost, "/attendance", `{"employeeId":"emp-1","date":"2025-03-04","status":1}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestListPassesFilters(t *testing.T) {
	in := attendance.NewClock(8, 30)
	svc := &stubService{records: []attendance.Record{{
		ID: "att-1", EmployeeName: "Ann Lee", Date: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Status: attendance.StatusPresent, CheckIn: &in,
	}}}
	rec := serve(svc, http.MethodGet, "/attendance?from=2025-03-01&to=2025-03-31&departmentId=dep-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.filter.From == nil || svc.filter.To == nil || svc.filter.DepartmentID != "dep-1" {
		t.Fatalf("unexpected filter %+v", svc.filter)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0]["status"] != float64(1) || body[0]["checkIn"] != "08:30" || body[0]["date"] != "2025-03-04" {
		t.Fatalf("unexpected body %v", body)
	}
	if body[0]["checkOut"] != nil {
		t.Fatalf("expected null checkOut, got %v", body[0]["checkOut"])
	}
}

func TestListRejectsBadDate(t *testing.T) {
	if rec := serve(&stubService{}, http.MethodGet, "/attendance?from=03/01/2025", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := &stubService{}
	if rec := serve(svc, http.MethodPut, "/attendance/att-1", `{"status":2}`); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.updated.Status != attendance.StatusAbsent {
		t.Fatalf("unexpected status %q", svc.updated.Status)
	}

	missing := &stubService{err: attendance.ErrNotFound}
	if rec := serve(missing, http.MethodDelete, "/attendance/x", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := serve(missing, http.MethodGet, "/attendance/x", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
