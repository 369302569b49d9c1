package repository

import (
	"sync"

	"github.com/Llorsque/500-tool/internal/models"
)

// MemoryRoster is the in-memory Roster implementation. The harvester
// goroutine and the caller mutate it concurrently, so access is guarded
// by a RWMutex.
type MemoryRoster struct {
	mu         sync.RWMutex
	records    []*models.CompetitorRecord
	lap2Locked bool
}

// NewMemoryRoster builds the roster from the seed list. Ids are
// assigned 1..n in seed order and never reused.
func NewMemoryRoster(seed []models.SeedEntry) *MemoryRoster {
	records := make([]*models.CompetitorRecord, 0, len(seed))
	for i, s := range seed {
		records = append(records, &models.CompetitorRecord{
			ID:   i + 1,
			Name: s.Name,
			Lap1: s.Lap1,
			Lap2: s.Lap2,
		})
	}
	return &MemoryRoster{records: records}
}

// All returns a snapshot of every record in seed order.
func (r *MemoryRoster) All() []models.CompetitorRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.CompetitorRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out
}

func (r *MemoryRoster) Get(id int) (models.CompetitorRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := r.find(id)
	if rec == nil {
		return models.CompetitorRecord{}, false
	}
	return *rec, true
}

func (r *MemoryRoster) SetName(id int, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.find(id)
	if rec == nil {
		return ErrNotFound
	}
	rec.Name = name
	return nil
}

func (r *MemoryRoster) SetLap1(id int, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.find(id)
	if rec == nil {
		return ErrNotFound
	}
	rec.Lap1 = raw
	return nil
}

// SetLap2 applies a manual lap 2 edit. Rejected while the harvester
// owns the field.
func (r *MemoryRoster) SetLap2(id int, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lap2Locked {
		return ErrLap2Locked
	}
	rec := r.find(id)
	if rec == nil {
		return ErrNotFound
	}
	rec.Lap2 = raw
	rec.Lap2Source = ""
	return nil
}

// SetLap2Harvested writes a harvester-provided lap 2 value with its
// provenance tag. It bypasses the manual-edit lock.
func (r *MemoryRoster) SetLap2Harvested(id int, raw, source string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.find(id)
	if rec == nil {
		return ErrNotFound
	}
	rec.Lap2 = raw
	rec.Lap2Source = source
	return nil
}

// ResetSecondLaps clears every lap 2 field and its provenance tag.
// Lap 1 times and names stay as they are.
func (r *MemoryRoster) ResetSecondLaps() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		rec.Lap2 = ""
		rec.Lap2Source = ""
	}
}

func (r *MemoryRoster) LockLap2(locked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lap2Locked = locked
}

func (r *MemoryRoster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *MemoryRoster) find(id int) *models.CompetitorRecord {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}
