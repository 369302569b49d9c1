package application

import (
	"sort"
	"strings"

	"github.com/Llorsque/500-tool/internal/laptime"
	"github.com/Llorsque/500-tool/internal/models"
	"github.com/Llorsque/500-tool/internal/repository"
)

type RankingServiceImpl struct {
	roster repository.Roster
	layout laptime.Layout
}

func NewRankingServiceImpl(roster repository.Roster, layout laptime.Layout) *RankingServiceImpl {
	return &RankingServiceImpl{
		roster: roster,
		layout: layout,
	}
}

// BestTime returns the fastest valid attempt. Lap 2 is only a candidate
// when the field is non-empty; an empty second lap means "not attempted"
// and never influences the result.
func (s *RankingServiceImpl) BestTime(rec models.CompetitorRecord) (int, bool) {
	lap1Ms, lap1OK := laptime.Parse(rec.Lap1, s.layout)

	lap2OK := false
	lap2Ms := 0
	if strings.TrimSpace(rec.Lap2) != "" {
		lap2Ms, lap2OK = laptime.Parse(rec.Lap2, s.layout)
	}

	switch {
	case lap1OK && lap2OK:
		if lap2Ms < lap1Ms {
			return lap2Ms, true
		}
		return lap1Ms, true
	case lap1OK:
		return lap1Ms, true
	case lap2OK:
		return lap2Ms, true
	}
	return 0, false
}

// Status classifies a row. The order is a strict priority: an invalid
// filled lap 2 wins over an invalid lap 1, which wins over ranked and
// pending.
func (s *RankingServiceImpl) Status(rec models.CompetitorRecord) models.RowStatus {
	lap1Filled := strings.TrimSpace(rec.Lap1) != ""
	lap2Filled := strings.TrimSpace(rec.Lap2) != ""

	_, lap1Valid := laptime.Parse(rec.Lap1, s.layout)
	_, lap2Valid := laptime.Parse(rec.Lap2, s.layout)

	if lap2Filled && !lap2Valid {
		return models.StatusInvalidLap2
	}
	if lap1Filled && !lap1Valid {
		return models.StatusInvalidLap1
	}
	if _, ok := s.BestTime(rec); ok {
		return models.StatusRanked
	}
	return models.StatusPending
}

// Leaderboard projects the roster onto ranked entries: records with a
// best time, sorted ascending, 1-based positions. Exact ties keep the
// roster order; no secondary key is applied. The projection is pure and
// idempotent, the roster is not touched.
func (s *RankingServiceImpl) Leaderboard() []models.RankedEntry {
	entries := make([]models.RankedEntry, 0, s.roster.Len())
	for _, rec := range s.roster.All() {
		bestMs, ok := s.BestTime(rec)
		if !ok {
			continue
		}
		entry := models.RankedEntry{
			Record: rec,
			BestMs: bestMs,
		}
		entry.Lap1Ms, entry.Lap1OK = laptime.Parse(rec.Lap1, s.layout)
		if strings.TrimSpace(rec.Lap2) != "" {
			entry.Lap2Ms, entry.Lap2OK = laptime.Parse(rec.Lap2, s.layout)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BestMs < entries[j].BestMs
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// TopN returns the first n leaderboard entries for the highlight list.
func (s *RankingServiceImpl) TopN(n int) []models.RankedEntry {
	if n <= 0 {
		n = defaultTopN
	}
	entries := s.Leaderboard()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
