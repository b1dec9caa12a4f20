/*
handlers.go - HTTP API handlers for the payroll system

PURPOSE:
  Exposes the employee repository and the payroll service via REST.
  Handles HTTP request/response and JSON serialization, delegates all
  semantics to the domain packages.

ENDPOINTS:
  Employees:
    GET    /api/employees           List all employees
    POST   /api/employees           Create employee
    GET    /api/employees/{cedula}  Get employee
    PUT    /api/employees/{cedula}  Replace employee
    DELETE /api/employees/{cedula}  Delete employee

  Payroll:
    POST   /api/payroll/run         Run monthly payroll

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Absent key on get/update/delete
  - 409: Duplicate key, payroll run over an empty employee set
  - 500: Storage failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Repo    *generic.Repository[payroll.Employee]
	Service *payroll.Service
}

// NewHandler creates a new handler over the repository and service.
func NewHandler(repo *generic.Repository[payroll.Employee], service *payroll.Service) *Handler {
	return &Handler{Repo: repo, Service: service}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees in snapshot order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee validates and creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := payroll.NewEmployee(req.Cedula, req.Name, decimal.NewFromFloat(req.Salary), req.Department, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee", err)
		return
	}

	if err := h.Repo.Create(r.Context(), emp); err != nil {
		if errors.Is(err, generic.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Employee already exists", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee by cedula.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	cedula := chi.URLParam(r, "cedula")

	emp, ok, err := h.Repo.Get(r.Context(), cedula)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// UpdateEmployee replaces the employee record under the given cedula.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	cedula := chi.URLParam(r, "cedula")

	var req UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := payroll.NewEmployee(cedula, req.Name, decimal.NewFromFloat(req.Salary), req.Department, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee", err)
		return
	}

	found, err := h.Repo.Update(r.Context(), cedula, emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update employee", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// DeleteEmployee removes the employee record under the given cedula.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	cedula := chi.URLParam(r, "cedula")

	removed, err := h.Repo.Delete(r.Context(), cedula)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// RunPayroll generates, persists, and summarizes the monthly payroll.
func (h *Handler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req RunPayrollRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	period := req.Period
	if period == "" {
		period = payroll.CurrentPeriod()
	}

	result, err := h.Service.ProcessFullPayroll(r.Context(), period)
	if err != nil {
		if errors.Is(err, payroll.ErrNoEmployees) {
			writeError(w, http.StatusConflict, "No employees registered", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to run payroll", err)
		return
	}

	writeJSON(w, http.StatusOK, RunPayrollResponse{
		Payroll:      toPayrollDTO(result.Payroll),
		Summary:      toSummaryDTO(result.Summary),
		ArtifactPath: result.ArtifactPath,
		ReportPath:   result.ReportPath,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
