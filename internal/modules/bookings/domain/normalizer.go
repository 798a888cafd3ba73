package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"okpujaAdmin/internal/shared/normalization"
)

// fieldAliases is the category-independent alias table: the same ordered
// chains serve all three service lines, which is what lets one Normalize
// function cover every upstream shape. Order matters: the first present
// alias wins.
var fieldAliases = map[string][]string{
	"id":                {"astro_book_id", "book_id", "id"},
	"status":            {"status", "booking_status"},
	"customerName":      {"customer_name", "contact_name", "user.name", "user.username", "name"},
	"customerEmail":     {"contact_email", "user_email", "user.email", "email"},
	"customerPhone":     {"contact_phone", "contact_number", "user.phone", "phone"},
	"serviceTitle":      {"service.title", "service_title", "package_name", "puja_name", "title"},
	"amount":            {"service.price", "package_price", "total_amount", "amount", "price"},
	"scheduledDate":     {"preferred_date", "booking_date", "selected_date", "date"},
	"scheduledTime":     {"preferred_time", "start_time", "selected_time", "time"},
	"location":          {"address", "location", "service_location", "city"},
	"priority":          {"priority", "urgency"},
	"assignedStaffID":   {"assigned_to", "assigned_staff_id", "employee_id"},
	"assignedStaffName": {"assigned_to_name", "assigned_staff_name", "employee.username"},
	"createdAt":         {"created_at", "created"},
	"updatedAt":         {"updated_at", "modified_at", "updated"},
}

// Normalize converts a raw category-specific record into the canonical
// Booking. It is pure: identical input always yields an identical Booking,
// and every canonical field is populated, with sentinels where the record
// carried nothing usable.
func Normalize(record map[string]any, category Category) Booking {
	booking := Booking{
		Category: category,
		Status:   StatusPending,
		Customer: Customer{Name: ValueMissing, Email: ValueMissing, Phone: ValueMissing},
		ServiceTitle: ValueMissing,
		Amount:       decimal.Zero,
		Location:     ValueMissing,
		Priority:     ValueMissing,
	}
	if record == nil {
		return booking
	}

	booking.ID = category.QualifyID(resolveIdentifier(record))
	if value, ok := ResolveValue(record, fieldAliases["status"]); ok {
		booking.Status = NormalizeStatus(value)
	}

	booking.Customer = Customer{
		Name:  ResolveString(record, fieldAliases["customerName"]),
		Email: ResolveString(record, fieldAliases["customerEmail"]),
		Phone: ResolveString(record, fieldAliases["customerPhone"]),
	}
	booking.ServiceTitle = ResolveString(record, fieldAliases["serviceTitle"])
	booking.Location = ResolveString(record, fieldAliases["location"])
	booking.Priority = ResolveString(record, fieldAliases["priority"])

	if value, ok := ResolveValue(record, fieldAliases["amount"]); ok {
		amount := normalization.AsDecimal(value)
		if amount.Sign() >= 0 {
			booking.Amount = amount
		}
	}

	if value, ok := ResolveValue(record, fieldAliases["scheduledDate"]); ok {
		booking.ScheduledDate = parseDate(normalization.AsString(value))
	}
	if value, ok := ResolveValue(record, fieldAliases["scheduledTime"]); ok {
		booking.ScheduledTime = NormalizeClockTime(normalization.AsString(value))
	}

	if value, ok := ResolveValue(record, fieldAliases["assignedStaffID"]); ok {
		if id := normalization.AsInt(value); id > 0 {
			booking.AssignedStaffID = &id
			booking.AssignedStaffName = ResolveString(record, fieldAliases["assignedStaffName"])
			if booking.AssignedStaffName == ValueMissing {
				booking.AssignedStaffName = ""
			}
		}
	}

	if value, ok := ResolveValue(record, fieldAliases["createdAt"]); ok {
		booking.CreatedAt = parseTimestamp(normalization.AsString(value))
	}
	if value, ok := ResolveValue(record, fieldAliases["updatedAt"]); ok {
		booking.UpdatedAt = parseTimestamp(normalization.AsString(value))
	}
	if booking.UpdatedAt.IsZero() {
		booking.UpdatedAt = booking.CreatedAt
	}

	return booking
}

// NormalizeRecords maps a raw collection into canonical bookings, skipping
// entries that are not objects.
func NormalizeRecords(records []any, category Category) []Booking {
	bookings := make([]Booking, 0, len(records))
	for _, entry := range records {
		record := normalization.AsMap(entry)
		if record == nil {
			continue
		}
		bookings = append(bookings, Normalize(record, category))
	}
	return bookings
}

func resolveIdentifier(record map[string]any) string {
	value, ok := ResolveValue(record, fieldAliases["id"])
	if !ok {
		return ""
	}
	return stringify(value)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "02-01-2006"}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

var clockLayouts = []string{"15:04:05", "15:04", "3:04 PM", "3:04PM"}

// NormalizeClockTime coerces the assorted upstream time-of-day formats into
// a seconds-precision "15:04:05" value, the shape the mutation endpoints
// require. Unparseable input yields an empty string.
func NormalizeClockTime(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("15:04:05")
		}
	}
	return ""
}
