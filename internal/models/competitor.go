package models

import "fmt"

// CompetitorRecord holds one rider's raw input state for the session.
// Lap1 and Lap2 are kept as entered; validation happens on read so that
// an empty field ("no attempt") stays distinguishable from an invalid one.
type CompetitorRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Lap1       string `json:"lap1"`
	Lap2       string `json:"lap2"`
	Lap2Source string `json:"lap2_source,omitempty"`
}

// DisplayName returns the stored name, or a generated label for unnamed
// rows. The stored name is never auto-filled.
func (r CompetitorRecord) DisplayName() string {
	if r.Name == "" {
		return fmt.Sprintf("Rider %d", r.ID)
	}
	return r.Name
}

// RankedEntry is a derived leaderboard row. It is recomputed on every
// query and never cached.
type RankedEntry struct {
	Record   CompetitorRecord
	BestMs   int
	Lap1Ms   int
	Lap1OK   bool
	Lap2Ms   int
	Lap2OK   bool
	Position int
}

type RowStatus int

const (
	StatusPending RowStatus = iota
	StatusRanked
	StatusInvalidLap1
	StatusInvalidLap2
)

func (s RowStatus) String() string {
	switch s {
	case StatusRanked:
		return "ranked"
	case StatusInvalidLap1:
		return "invalid-lap1"
	case StatusInvalidLap2:
		return "invalid-lap2"
	default:
		return "pending"
	}
}

// Label is the human-readable badge text for a status.
func (s RowStatus) Label() string {
	switch s {
	case StatusRanked:
		return "In ranking"
	case StatusInvalidLap1:
		return "Invalid lap 1"
	case StatusInvalidLap2:
		return "Invalid lap 2"
	default:
		return "Waiting for a time"
	}
}
