package inventory

import "sync"

// flightRecord holds the seat counters and registration flag for one
// flight. Every mutation goes through its own mutex: a concurrency-safe
// outer map alone would not make the per-class counters safe.
type flightRecord struct {
	mu                  sync.Mutex
	seats               map[string]int
	registrationStarted bool
}

// SeatInventory is the sole arbiter of seat availability and the
// per-flight registration lock. Records are created lazily on the first
// reference to a flight and live for the process lifetime.
type SeatInventory struct {
	mu      sync.RWMutex
	flights map[string]*flightRecord
}

func NewSeatInventory() *SeatInventory {
	return &SeatInventory{flights: make(map[string]*flightRecord)}
}

func (inv *SeatInventory) get(flightID string) (*flightRecord, bool) {
	inv.mu.RLock()
	rec, ok := inv.flights[flightID]
	inv.mu.RUnlock()
	return rec, ok
}

// InitializeFlight creates the seat record for a flight if it does not
// exist yet. First writer wins: later calls are no-ops even when they
// carry a different seat map.
func (inv *SeatInventory) InitializeFlight(flightID string, seatsByClass map[string]int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.flights[flightID]; ok {
		return
	}
	seats := make(map[string]int, len(seatsByClass))
	for class, count := range seatsByClass {
		seats[class] = count
	}
	inv.flights[flightID] = &flightRecord{seats: seats}
}

// IsRegistrationStarted reports whether check-in has begun for the
// flight. Unknown flights report false.
func (inv *SeatInventory) IsRegistrationStarted(flightID string) bool {
	rec, ok := inv.get(flightID)
	if !ok {
		return false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.registrationStarted
}

// MarkRegistrationStarted sets the one-way registration flag. It is
// idempotent and never reverts; unknown flights are a no-op.
func (inv *SeatInventory) MarkRegistrationStarted(flightID string) {
	rec, ok := inv.get(flightID)
	if !ok {
		return
	}
	rec.mu.Lock()
	rec.registrationStarted = true
	rec.mu.Unlock()
}

// TryReserveSeat atomically checks and decrements the counter for the
// given seat class. It returns false when the flight or class is unknown
// or no seats remain; the count never goes negative.
func (inv *SeatInventory) TryReserveSeat(flightID, seatClass string) bool {
	rec, ok := inv.get(flightID)
	if !ok {
		return false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	count, ok := rec.seats[seatClass]
	if !ok || count <= 0 {
		return false
	}
	rec.seats[seatClass] = count - 1
	return true
}

// ReleaseSeat returns one seat of the given class to the pool. Unknown
// flights and classes are a no-op. The increment is not bounded by the
// original capacity, matching the behavior check-in integrations rely on.
func (inv *SeatInventory) ReleaseSeat(flightID, seatClass string) {
	rec, ok := inv.get(flightID)
	if !ok {
		return
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if _, ok := rec.seats[seatClass]; ok {
		rec.seats[seatClass]++
	}
}

// Availability returns a snapshot of remaining seats per class. Unknown
// flights yield an empty map.
func (inv *SeatInventory) Availability(flightID string) map[string]int {
	rec, ok := inv.get(flightID)
	if !ok {
		return map[string]int{}
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	snapshot := make(map[string]int, len(rec.seats))
	for class, count := range rec.seats {
		snapshot[class] = count
	}
	return snapshot
}
