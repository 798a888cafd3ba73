package domain

import "testing"

func TestEligibleAssignee(t *testing.T) {
	cases := []struct {
		name     string
		employee Employee
		want     bool
	}{
		{"active employee", Employee{ID: 1, Role: RoleEmployee, IsActive: true}, true},
		{"active manager", Employee{ID: 2, Role: RoleManager, IsActive: true}, true},
		{"active admin", Employee{ID: 3, Role: RoleAdmin, IsActive: true}, true},
		{"inactive employee", Employee{ID: 4, Role: RoleEmployee, IsActive: false}, false},
		{"customer account", Employee{ID: 5, Role: RoleUser, IsActive: true}, false},
		{"lowercase role", Employee{ID: 6, Role: Role("user"), IsActive: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.employee.EligibleAssignee(); got != tc.want {
				t.Fatalf("EligibleAssignee() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFromRecords_SkipsRecordsWithoutUsableID(t *testing.T) {
	records := []any{
		map[string]any{"id": 7, "username": "priest.two", "role": "EMPLOYEE", "is_active": true},
		map[string]any{"id": "8", "username": "astro.lead", "role": "MANAGER", "is_active": "true"},
		map[string]any{"username": "no.id"},
		map[string]any{"id": 0, "username": "zero.id"},
		"not an object",
	}

	employees := FromRecords(records)
	if len(employees) != 2 {
		t.Fatalf("decoded %d employees, want 2", len(employees))
	}
	if employees[0].ID != 7 || employees[0].Username != "priest.two" {
		t.Fatalf("first = %+v", employees[0])
	}
	if employees[1].ID != 8 || employees[1].Role != RoleManager {
		t.Fatalf("second = %+v", employees[1])
	}
	if !employees[1].IsActive {
		t.Fatal("string \"true\" not coerced to active")
	}
}
