package seats

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrHoldNotFound = errors.New("hold not found or expired")
	ErrSeatsHeld    = errors.New("seat already held")
)

// Locker keeps short-lived, all-or-nothing seat locks per showtime
type Locker interface {
	Acquire(ctx context.Context, hold HoldDetails, ttl time.Duration) error
	Release(ctx context.Context, holdID string) (int, error)
	Get(ctx context.Context, holdID string) (*HoldDetails, error)
	HeldSeats(ctx context.Context, showtimeID string, seatIDs []string) (map[string]HoldRef, error)
	UserHolds(ctx context.Context, userID string) ([]string, error)
}

type memoryHold struct {
	details   HoldDetails
	expiresAt time.Time
}

// MemoryLocker is the in-process Locker used when Redis is disabled
type MemoryLocker struct {
	mu    sync.Mutex
	holds map[string]*memoryHold
	seats map[string]string // showtime:seat -> hold id
	now   func() time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		holds: make(map[string]*memoryHold),
		seats: make(map[string]string),
		now:   time.Now,
	}
}

// WithClock replaces the time source
func (m *MemoryLocker) WithClock(now func() time.Time) *MemoryLocker {
	m.now = now
	return m
}

func seatKey(showtimeID, seatID string) string {
	return showtimeID + ":" + seatID
}

// live returns the hold if it exists and has not expired. Caller holds mu.
func (m *MemoryLocker) live(holdID string) (*memoryHold, bool) {
	h, ok := m.holds[holdID]
	if !ok {
		return nil, false
	}
	if !m.now().Before(h.expiresAt) {
		m.drop(holdID, h)
		return nil, false
	}
	return h, true
}

func (m *MemoryLocker) drop(holdID string, h *memoryHold) {
	for _, seatID := range h.details.SeatIDs {
		key := seatKey(h.details.ShowtimeID, seatID)
		if m.seats[key] == holdID {
			delete(m.seats, key)
		}
	}
	delete(m.holds, holdID)
}

func (m *MemoryLocker) Acquire(_ context.Context, hold HoldDetails, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, seatID := range hold.SeatIDs {
		if holder, ok := m.seats[seatKey(hold.ShowtimeID, seatID)]; ok {
			if _, alive := m.live(holder); alive {
				return &HeldError{SeatID: seatID}
			}
		}
	}

	expiresAt := m.now().Add(ttl)
	hold.ExpiresAt = expiresAt
	hold.SeatIDs = append([]string(nil), hold.SeatIDs...)
	m.holds[hold.HoldID] = &memoryHold{details: hold, expiresAt: expiresAt}
	for _, seatID := range hold.SeatIDs {
		m.seats[seatKey(hold.ShowtimeID, seatID)] = hold.HoldID
	}
	return nil
}

func (m *MemoryLocker) Release(_ context.Context, holdID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.live(holdID)
	if !ok {
		return 0, ErrHoldNotFound
	}
	m.drop(holdID, h)
	return len(h.details.SeatIDs), nil
}

func (m *MemoryLocker) Get(_ context.Context, holdID string) (*HoldDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.live(holdID)
	if !ok {
		return nil, ErrHoldNotFound
	}
	details := h.details
	details.SeatIDs = append([]string(nil), h.details.SeatIDs...)
	details.TTL = int(h.expiresAt.Sub(m.now()).Seconds())
	return &details, nil
}

func (m *MemoryLocker) HeldSeats(_ context.Context, showtimeID string, seatIDs []string) (map[string]HoldRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	held := make(map[string]HoldRef)
	for _, seatID := range seatIDs {
		holdID, ok := m.seats[seatKey(showtimeID, seatID)]
		if !ok {
			continue
		}
		if h, alive := m.live(holdID); alive {
			held[seatID] = HoldRef{UserID: h.details.UserID, HoldID: holdID}
		}
	}
	return held, nil
}

func (m *MemoryLocker) UserHolds(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for holdID, h := range m.holds {
		if h.details.UserID != userID {
			continue
		}
		if _, alive := m.live(holdID); alive {
			ids = append(ids, holdID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// HeldError names the first seat that blocked an Acquire
type HeldError struct {
	SeatID string
}

func (e *HeldError) Error() string {
	return ErrSeatsHeld.Error() + ": " + e.SeatID
}

func (e *HeldError) Unwrap() error {
	return ErrSeatsHeld
}
