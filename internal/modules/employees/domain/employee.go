package domain

import (
	"strings"

	"okpujaAdmin/internal/shared/normalization"
)

// Role is the directory role attached to an employee account.
type Role string

const (
	RoleUser     Role = "USER"
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Employee is a staff directory entry as served by the employee API.
type Employee struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// EligibleAssignee reports whether the employee may be assigned to bookings:
// the account must be active and carry a staff role.
func (e Employee) EligibleAssignee() bool {
	return e.IsActive && !strings.EqualFold(string(e.Role), string(RoleUser))
}

// FromRecord decodes a loosely-typed directory record.
func FromRecord(record map[string]any) Employee {
	return Employee{
		ID:       normalization.AsInt(record["id"]),
		Username: normalization.AsString(record["username"]),
		Email:    normalization.AsString(record["email"]),
		Role:     Role(strings.ToUpper(normalization.AsString(record["role"]))),
		IsActive: normalization.AsBool(record["is_active"]),
	}
}

// FromRecords decodes a directory payload, skipping non-object entries and
// entries without a usable id.
func FromRecords(records []any) []Employee {
	employees := make([]Employee, 0, len(records))
	for _, entry := range records {
		record := normalization.AsMap(entry)
		if record == nil {
			continue
		}
		employee := FromRecord(record)
		if employee.ID <= 0 {
			continue
		}
		employees = append(employees, employee)
	}
	return employees
}
