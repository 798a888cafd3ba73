package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Filter describes the optional constraints applied to the normalized
// collection. Every field is independently optional (the zero value matches
// everything) and populated fields compose with logical AND.
type Filter struct {
	// Search matches case-insensitively against service title, customer
	// name and email, and category.
	Search        string
	Status        Status
	DateFrom      *time.Time
	DateTo        *time.Time
	ServiceType   string
	AssignedStaff string
	Location      string
	Priority      string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
}

// Query returns the bookings matching every populated filter, preserving the
// input's relative order.
func Query(bookings []Booking, filter Filter) []Booking {
	results := make([]Booking, 0, len(bookings))
	for _, booking := range bookings {
		if filter.matches(booking) {
			results = append(results, booking)
		}
	}
	return results
}

func (f Filter) matches(b Booking) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		haystack := strings.ToLower(strings.Join([]string{
			b.ServiceTitle, b.Customer.Name, b.Customer.Email, string(b.Category),
		}, " "))
		if !strings.Contains(haystack, search) {
			return false
		}
	}
	if f.Status != StatusUnknown && b.Status != f.Status {
		return false
	}
	if f.DateFrom != nil {
		if b.ScheduledDate == nil || b.ScheduledDate.Before(*f.DateFrom) {
			return false
		}
	}
	if f.DateTo != nil {
		if b.ScheduledDate == nil || b.ScheduledDate.After(*f.DateTo) {
			return false
		}
	}
	if serviceType := strings.TrimSpace(f.ServiceType); serviceType != "" {
		if !strings.EqualFold(b.ServiceTitle, serviceType) && !strings.EqualFold(string(b.Category), serviceType) {
			return false
		}
	}
	if staff := strings.TrimSpace(f.AssignedStaff); staff != "" {
		if !matchesStaff(b, staff) {
			return false
		}
	}
	if location := strings.TrimSpace(f.Location); location != "" {
		if !strings.Contains(strings.ToLower(b.Location), strings.ToLower(location)) {
			return false
		}
	}
	if priority := strings.TrimSpace(f.Priority); priority != "" {
		if !strings.EqualFold(b.Priority, priority) {
			return false
		}
	}
	// Amount bounds are inclusive on both ends.
	if f.MinAmount != nil && b.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && b.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

func matchesStaff(b Booking, staff string) bool {
	if id, err := strconv.Atoi(staff); err == nil {
		return b.AssignedTo(id)
	}
	return strings.EqualFold(b.AssignedStaffName, staff)
}

// SortField names a sortable canonical field.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByDate      SortField = "scheduled_date"
	SortByAmount    SortField = "amount"
	SortByCustomer  SortField = "customer"
	SortByService   SortField = "service"
	SortByStatus    SortField = "status"
)

// SortDirection is ASC or DESC.
type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// ParseSortDirection defaults to ascending for anything but DESC.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

// Sort returns a sorted copy of the bookings. The sort is stable: list
// order out of a refresh carries recency, so ties must preserve the original
// relative order. String fields compare case-insensitively; numeric and date
// fields compare numerically.
func Sort(bookings []Booking, field SortField, direction SortDirection) []Booking {
	sorted := make([]Booking, len(bookings))
	copy(sorted, bookings)

	less := lessFunc(field)
	if less == nil {
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDescending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(field SortField) func(a, b Booking) bool {
	switch field {
	case SortByAmount:
		return func(a, b Booking) bool { return a.Amount.LessThan(b.Amount) }
	case SortByCreatedAt:
		return func(a, b Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByDate:
		return func(a, b Booking) bool {
			switch {
			case a.ScheduledDate == nil:
				return b.ScheduledDate != nil
			case b.ScheduledDate == nil:
				return false
			}
			return a.ScheduledDate.Before(*b.ScheduledDate)
		}
	case SortByCustomer:
		return func(a, b Booking) bool {
			return strings.ToLower(a.Customer.Name) < strings.ToLower(b.Customer.Name)
		}
	case SortByService:
		return func(a, b Booking) bool {
			return strings.ToLower(a.ServiceTitle) < strings.ToLower(b.ServiceTitle)
		}
	case SortByStatus:
		return func(a, b Booking) bool {
			return strings.ToLower(string(a.Status)) < strings.ToLower(string(b.Status))
		}
	}
	return nil
}
