package application

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/Llorsque/500-tool/internal/laptime"
	"github.com/Llorsque/500-tool/internal/repository"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HarvestResult describes the outcome of the most recent cycle.
type HarvestResult struct {
	At      time.Time
	Updated int
	Err     error
}

// HarvestServiceImpl periodically fetches the external results feed,
// matches competitor names in it and writes found times into the
// second-lap field. Each cycle is independent: a failed fetch leaves
// state untouched and the next tick retries fresh.
type HarvestServiceImpl struct {
	roster   repository.Roster
	fetcher  FeedFetcher
	layout   laptime.Layout
	interval time.Duration
	logger   Logger

	mu   sync.Mutex
	stop chan struct{}
	last HarvestResult
}

func NewHarvestServiceImpl(roster repository.Roster, fetcher FeedFetcher, layout laptime.Layout, interval time.Duration, logger Logger) *HarvestServiceImpl {
	if interval <= 0 {
		interval = defaultHarvestInterval
	}
	return &HarvestServiceImpl{
		roster:   roster,
		fetcher:  fetcher,
		layout:   layout,
		interval: interval,
		logger:   logger,
	}
}

// Start arms the polling loop. A previous loop, if any, is cancelled
// first, so calling Start twice never leaks a ticker. While the loop
// runs, manual lap 2 edits are rejected at the roster boundary.
func (s *HarvestServiceImpl) Start() {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
	}
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	s.roster.LockLap2(true)
	go s.loop(stop)
}

// Stop cancels the polling loop and releases the lap 2 lock. Safe to
// call without a running loop.
func (s *HarvestServiceImpl) Stop() {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.mu.Unlock()

	s.roster.LockLap2(false)
}

func (s *HarvestServiceImpl) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// LastResult reports the most recent cycle outcome for the status pill.
func (s *HarvestServiceImpl) LastResult() HarvestResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *HarvestServiceImpl) loop(stop chan struct{}) {
	s.runCycle()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.runCycle()
		}
	}
}

func (s *HarvestServiceImpl) runCycle() {
	updated, err := s.RunOnce()
	if err != nil {
		s.logger.Warn("harvest cycle failed", "error", err)
		return
	}
	if updated > 0 {
		s.logger.Info("harvest cycle applied updates", "updated", updated)
	}
}

// RunOnce performs a single fetch-match-apply cycle and returns the
// number of changed records.
func (s *HarvestServiceImpl) RunOnce() (int, error) {
	if s.fetcher == nil {
		err := fmt.Errorf("no results feed configured")
		s.record(0, err)
		return 0, err
	}

	text, err := s.fetcher.FetchText()
	if err != nil {
		s.record(0, err)
		return 0, err
	}

	wanted := make([]string, 0, s.roster.Len())
	for _, rec := range s.roster.All() {
		if key := Normalize(rec.Name); key != "" {
			wanted = append(wanted, key)
		}
	}

	results := Harvest(text, wanted, s.layout)
	updated := s.apply(results)
	s.record(updated, nil)
	return updated, nil
}

// apply writes harvested times into matching records, but only when the
// value actually differs; untouched records keep their provenance tag.
func (s *HarvestServiceImpl) apply(results map[string]string) int {
	updated := 0
	for _, rec := range s.roster.All() {
		token, ok := results[Normalize(rec.Name)]
		if !ok || token == rec.Lap2 {
			continue
		}
		if err := s.roster.SetLap2Harvested(rec.ID, token, lap2SourceLive); err != nil {
			s.logger.Error("failed to apply harvested time", "id", rec.ID, "error", err)
			continue
		}
		updated++
	}
	return updated
}

func (s *HarvestServiceImpl) record(updated int, err error) {
	s.mu.Lock()
	s.last = HarvestResult{At: time.Now(), Updated: updated, Err: err}
	s.mu.Unlock()
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims, strips diacritical marks and collapses
// internal whitespace, so that feed text and stored names compare
// accent- and case-insensitively.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if folded, _, err := transform.String(diacriticStripper, name); err == nil {
		name = folded
	}

	var result strings.Builder
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !prevSpace {
				result.WriteRune(' ')
				prevSpace = true
			}
		} else {
			result.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(result.String())
}

// Harvest scans feed text for the wanted normalized names. A line whose
// normalized form contains a wanted name triggers a forward search over
// that line and the two following ones for the first loose time token
// that also parses as a lap time; the first hit per name wins and later
// occurrences are ignored. Multiple names on one line each trigger
// their own window.
func Harvest(feedText string, wanted []string, layout laptime.Layout) map[string]string {
	lines := strings.Split(feedText, "\n")
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = Normalize(line)
	}

	found := make(map[string]string)
	for i := range lines {
		for _, name := range wanted {
			if name == "" {
				continue
			}
			if _, done := found[name]; done {
				continue
			}
			if !strings.Contains(normalized[i], name) {
				continue
			}
			if token, ok := findTimeToken(lines, i, layout); ok {
				found[name] = token
			}
		}
	}
	return found
}

// findTimeToken searches the window starting at line start for the
// first token that both looks like a time and parses as one. The token
// is returned in canonical comma form.
func findTimeToken(lines []string, start int, layout laptime.Layout) (string, bool) {
	end := start + harvestWindowLines
	if end > len(lines)-1 {
		end = len(lines) - 1
	}
	for i := start; i <= end; i++ {
		for _, token := range laptime.LooseTokenPattern.FindAllString(lines[i], -1) {
			canonical := strings.Replace(token, ".", ",", 1)
			if _, ok := laptime.Parse(canonical, layout); ok {
				return canonical, true
			}
		}
	}
	return "", false
}
