package usecase

import "sync"

// operationKind distinguishes the mutation families subject to single-flight
// exclusion.
type operationKind string

const (
	opStatus     operationKind = "status"
	opAssign     operationKind = "assign"
	opReschedule operationKind = "reschedule"
)

// inflightRegistry enforces at most one outstanding mutation per
// (booking, operation kind). Different bookings, or different operation kinds
// on the same booking, proceed concurrently; a duplicate is rejected rather
// than queued so two writes never race on the same upstream record.
type inflightRegistry struct {
	mu      sync.Mutex
	pending map[inflightKey]struct{}
}

type inflightKey struct {
	bookingID string
	kind      operationKind
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{pending: make(map[inflightKey]struct{})}
}

// begin claims the slot for the given booking and kind, or reports
// ErrOperationInProgress when one is already pending.
func (r *inflightRegistry) begin(bookingID string, kind operationKind) error {
	key := inflightKey{bookingID: bookingID, kind: kind}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pending[key]; exists {
		return ErrOperationInProgress
	}
	r.pending[key] = struct{}{}
	return nil
}

func (r *inflightRegistry) end(bookingID string, kind operationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, inflightKey{bookingID: bookingID, kind: kind})
}
