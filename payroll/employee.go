/*
employee.go - Employee construction, validation, and snapshot codec

PURPOSE:
  NewEmployee is the only way to obtain an Employee. It checks every
  field invariant up front, before any field is set or any persistence
  is attempted: string fields must be non-empty after trimming, the
  salary must be non-negative. Violations surface as
  generic.ValidationError naming the failing field.

  The codec maps the Employee to its stored record. Field names in the
  snapshot follow the cedula/nombre/sueldo/departamento/cargo wire
  format; deserialization re-runs construction so invalid stored
  records are rejected rather than materialized.

SEE ALSO:
  - generic/repository.go: Consumes the codec
  - types.go: The Employee type
*/
package payroll

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/generic"
)

// NewEmployee validates and constructs an Employee.
func NewEmployee(cedula, name string, baseSalary decimal.Decimal, department, role string) (Employee, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"cedula", cedula},
		{"name", name},
		{"department", department},
		{"role", role},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Employee{}, &generic.ValidationError{Field: f.name, Reason: "must not be empty"}
		}
	}
	if baseSalary.IsNegative() {
		return Employee{}, &generic.ValidationError{Field: "baseSalary", Reason: "must not be negative"}
	}

	return Employee{
		ID:         cedula,
		Name:       name,
		BaseSalary: baseSalary,
		Department: department,
		Role:       role,
	}, nil
}

// =============================================================================
// SNAPSHOT CODEC
// =============================================================================

// employeeRecord is the stored form of an Employee.
type employeeRecord struct {
	Cedula       string  `json:"cedula"`
	Nombre       string  `json:"nombre"`
	Sueldo       float64 `json:"sueldo"`
	Departamento string  `json:"departamento"`
	Cargo        string  `json:"cargo"`
}

// EmployeeCodec implements generic.Codec for Employee.
type EmployeeCodec struct{}

func (EmployeeCodec) Serialize(e Employee) (json.RawMessage, error) {
	sueldo, _ := e.BaseSalary.Float64()
	return json.Marshal(employeeRecord{
		Cedula:       e.ID,
		Nombre:       e.Name,
		Sueldo:       sueldo,
		Departamento: e.Department,
		Cargo:        e.Role,
	})
}

func (EmployeeCodec) Deserialize(rec json.RawMessage) (Employee, error) {
	var r employeeRecord
	if err := json.Unmarshal(rec, &r); err != nil {
		return Employee{}, err
	}
	return NewEmployee(r.Cedula, r.Nombre, decimal.NewFromFloat(r.Sueldo), r.Departamento, r.Cargo)
}

func (EmployeeCodec) Key(e Employee) string { return e.ID }

// NewEmployeeRepository composes the generic snapshot repository with
// the employee codec over the given storage backend.
func NewEmployeeRepository(storage generic.Storage) *generic.Repository[Employee] {
	return generic.NewRepository[Employee](storage, EmployeeCodec{})
}
