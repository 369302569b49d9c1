package repository

import (
	"errors"

	"github.com/Llorsque/500-tool/internal/models"
)

var (
	// ErrNotFound is returned for an unknown competitor id.
	ErrNotFound = errors.New("competitor not found")
	// ErrLap2Locked is returned for manual lap 2 edits while the live
	// harvester owns the field.
	ErrLap2Locked = errors.New("lap 2 is managed by live results")
)

// Roster is the session-scoped competitor collection. Rows are created
// once from the seed list and never deleted; ids are unique and
// immutable. State lives in memory only and is discarded with the
// session.
type Roster interface {
	All() []models.CompetitorRecord
	Get(id int) (models.CompetitorRecord, bool)
	SetName(id int, name string) error
	SetLap1(id int, raw string) error
	SetLap2(id int, raw string) error
	SetLap2Harvested(id int, raw, source string) error
	ResetSecondLaps()
	LockLap2(locked bool)
	Len() int
}
