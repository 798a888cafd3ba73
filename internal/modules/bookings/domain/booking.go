package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueMissing is the sentinel standing in for fields the upstream record did
// not carry under any known alias.
const ValueMissing = "N/A"

// Customer holds the contact details resolved from a raw booking record.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the canonical view model shared by every admin surface. It is
// rebuilt from the upstream records on every refresh and never persisted
// locally.
type Booking struct {
	ID            string          `json:"id"`
	Category      Category        `json:"category"`
	Status        Status          `json:"status"`
	Customer      Customer        `json:"customer"`
	ServiceTitle  string          `json:"service_title"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate *time.Time      `json:"scheduled_date"`
	// ScheduledTime is a wall-clock value ("15:04:05"), empty when unknown.
	ScheduledTime     string     `json:"scheduled_time,omitempty"`
	Location          string     `json:"location"`
	Priority          string     `json:"priority"`
	AssignedStaffID   *int       `json:"assigned_staff_id"`
	AssignedStaffName string     `json:"assigned_staff_name,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// AssignedTo reports whether the booking is currently assigned to the given
// employee.
func (b Booking) AssignedTo(employeeID int) bool {
	return b.AssignedStaffID != nil && *b.AssignedStaffID == employeeID
}
