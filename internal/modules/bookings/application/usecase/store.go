package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
)

// SessionStore owns the in-memory normalized collection for one admin
// session. It has a single writer (the refresh path) and many readers; a
// collection is only ever replaced wholesale, never patched in place.
//
// Each category carries a generation counter. A refresh records the
// generation it started under and its result is discarded when a newer
// refresh has begun in the meantime, so a stale in-flight response can never
// clobber fresher data.
type SessionStore struct {
	fetcher port.BookingFetcher

	mu          sync.RWMutex
	collections map[domain.Category][]domain.Booking
	generations map[domain.Category]uint64
	refreshedAt map[domain.Category]time.Time
}

func NewSessionStore(fetcher port.BookingFetcher) *SessionStore {
	return &SessionStore{
		fetcher:     fetcher,
		collections: make(map[domain.Category][]domain.Booking),
		generations: make(map[domain.Category]uint64),
		refreshedAt: make(map[domain.Category]time.Time),
	}
}

// RefreshCategory re-fetches and re-normalizes one category's collection.
func (s *SessionStore) RefreshCategory(ctx context.Context, token string, category domain.Category) error {
	generation := s.nextGeneration(category)

	records, err := s.fetcher.FetchBookings(ctx, token, category)
	if err != nil {
		slog.Warn("booking refresh failed",
			slog.String("category", string(category)),
			slog.Uint64("generation", generation),
			slog.Any("error", err))
		return err
	}

	bookings := domain.NormalizeRecords(records, category)
	if !s.commit(category, generation, bookings) {
		slog.Info("stale booking refresh discarded",
			slog.String("category", string(category)),
			slog.Uint64("generation", generation))
		return nil
	}

	slog.Info("booking collection refreshed",
		slog.String("category", string(category)),
		slog.Uint64("generation", generation),
		slog.Int("count", len(bookings)))
	return nil
}

// RefreshAll refreshes every category, reporting each outcome independently.
func (s *SessionStore) RefreshAll(ctx context.Context, token string) map[domain.Category]error {
	outcomes := make(map[domain.Category]error, len(domain.Categories()))
	for _, category := range domain.Categories() {
		outcomes[category] = s.RefreshCategory(ctx, token, category)
	}
	return outcomes
}

// ScheduleRefresh re-fetches a category after the given delay. The upstream
// system is eventually consistent for some writes, so mutation paths hand a
// settle delay in here instead of refreshing immediately. The generation
// counter makes a late arrival harmless.
func (s *SessionStore) ScheduleRefresh(token string, category domain.Category, delay time.Duration, timeout time.Duration) {
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.RefreshCategory(ctx, token, category); err != nil {
			slog.Warn("scheduled refresh failed",
				slog.String("category", string(category)),
				slog.Any("error", err))
		}
	})
}

func (s *SessionStore) nextGeneration(category domain.Category) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[category]++
	return s.generations[category]
}

func (s *SessionStore) commit(category domain.Category, generation uint64, bookings []domain.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation < s.generations[category] {
		return false
	}
	s.collections[category] = bookings
	s.refreshedAt[category] = time.Now().UTC()
	return true
}

// Bookings returns a copy of one category's collection.
func (s *SessionStore) Bookings(category domain.Category) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	collection := s.collections[category]
	out := make([]domain.Booking, len(collection))
	copy(out, collection)
	return out
}

// AllBookings returns a copy of every collection in category order.
func (s *SessionStore) AllBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0)
	for _, category := range domain.Categories() {
		out = append(out, s.collections[category]...)
	}
	return out
}

// Find looks up a booking by canonical id.
func (s *SessionStore) Find(id string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, category := range domain.Categories() {
		for _, booking := range s.collections[category] {
			if booking.ID == id {
				return booking, true
			}
		}
	}
	return domain.Booking{}, false
}

// RefreshedAt reports when a category was last committed.
func (s *SessionStore) RefreshedAt(category domain.Category) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt[category]
}
