package domain

// StatusTransitionRequest asks for a lifecycle change on one booking.
// BookingID is the canonical (category-qualified) identifier.
type StatusTransitionRequest struct {
	BookingID string
	Category  Category
	Target    Status
	Reason    string
}

// AssignmentRequest asks for a staff assignment change. Unassign is a tagged
// variant rather than an employee id of zero: the upstream wire contract
// happens to encode unassignment as 0, but zero is not a reserved employee id
// in the domain, so the translation lives at the wire boundary only.
type AssignmentRequest struct {
	BookingID  string
	Category   Category
	EmployeeID int
	Unassign   bool
	Notes      string
}

// RescheduleRequest asks for a date/time change. NewDate is "2006-01-02";
// NewTime accepts any upstream clock format and is normalized to seconds
// precision before transmission.
type RescheduleRequest struct {
	BookingID string
	Category  Category
	NewDate   string
	NewTime   string
	Reason    string
}
