package repository

import (
	"errors"
	"os"
	"testing"

	"github.com/Llorsque/500-tool/internal/models"
)

func testSeed() []models.SeedEntry {
	return []models.SeedEntry{
		{Name: "Sebas Diniz", Lap1: "34,142"},
		{Name: "Jenning de Boo", Lap1: "34,361", Lap2: "34,100"},
		{Name: ""},
	}
}

func TestNewMemoryRosterAssignsIDs(t *testing.T) {
	roster := NewMemoryRoster(testSeed())

	if roster.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", roster.Len())
	}
	for i, rec := range roster.All() {
		if rec.ID != i+1 {
			t.Errorf("record %d has id %d, want %d", i, rec.ID, i+1)
		}
	}
	rec, ok := roster.Get(2)
	if !ok {
		t.Fatal("expected record 2 to exist")
	}
	if rec.Name != "Jenning de Boo" || rec.Lap1 != "34,361" || rec.Lap2 != "34,100" {
		t.Errorf("record 2 seeded wrong: %+v", rec)
	}
}

func TestRosterMutations(t *testing.T) {
	roster := NewMemoryRoster(testSeed())

	if err := roster.SetName(3, "Tim Prins"); err != nil {
		t.Fatal(err)
	}
	if err := roster.SetLap1(3, "34,820"); err != nil {
		t.Fatal(err)
	}
	if err := roster.SetLap2(3, "34,700"); err != nil {
		t.Fatal(err)
	}

	rec, _ := roster.Get(3)
	if rec.Name != "Tim Prins" || rec.Lap1 != "34,820" || rec.Lap2 != "34,700" {
		t.Errorf("mutations not applied: %+v", rec)
	}

	if err := roster.SetLap1(99, "34,000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestSetLap2LockedWhileHarvesting(t *testing.T) {
	roster := NewMemoryRoster(testSeed())
	roster.LockLap2(true)

	if err := roster.SetLap2(1, "34,000"); !errors.Is(err, ErrLap2Locked) {
		t.Fatalf("expected ErrLap2Locked, got %v", err)
	}
	// lap1 and name stay editable while locked
	if err := roster.SetLap1(1, "34,000"); err != nil {
		t.Errorf("SetLap1 should not be locked: %v", err)
	}
	if err := roster.SetName(1, "Other"); err != nil {
		t.Errorf("SetName should not be locked: %v", err)
	}
	if err := roster.SetLap2Harvested(1, "34,050", "live"); err != nil {
		t.Errorf("harvester write should bypass the lock: %v", err)
	}

	rec, _ := roster.Get(1)
	if rec.Lap2 != "34,050" || rec.Lap2Source != "live" {
		t.Errorf("harvested write not applied: %+v", rec)
	}

	roster.LockLap2(false)
	if err := roster.SetLap2(1, "34,000"); err != nil {
		t.Errorf("SetLap2 should work after unlock: %v", err)
	}
	rec, _ = roster.Get(1)
	if rec.Lap2Source != "" {
		t.Errorf("manual edit should clear the provenance tag, got %q", rec.Lap2Source)
	}
}

func TestResetSecondLaps(t *testing.T) {
	roster := NewMemoryRoster(testSeed())
	_ = roster.SetLap2Harvested(1, "34,050", "live")

	roster.ResetSecondLaps()

	for _, rec := range roster.All() {
		if rec.Lap2 != "" || rec.Lap2Source != "" {
			t.Errorf("record %d lap2 not reset: %+v", rec.ID, rec)
		}
	}
	rec, _ := roster.Get(1)
	if rec.Lap1 != "34,142" {
		t.Errorf("lap1 must survive a reset, got %q", rec.Lap1)
	}
}

func TestLoadSeedFile(t *testing.T) {
	seedContent := `- name: Sebas Diniz
  lap1: "34,142"
- name: Jenning de Boo
  lap1: "34,361"
  lap2: "34,100"
`
	tmpFile, err := os.CreateTemp("", "seed-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(seedContent)); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	seed, err := LoadSeedFile(tmpFile.Name())
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	if len(seed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(seed))
	}
	if seed[0].Name != "Sebas Diniz" || seed[0].Lap1 != "34,142" {
		t.Errorf("first entry wrong: %+v", seed[0])
	}
	if seed[1].Lap2 != "34,100" {
		t.Errorf("second entry lap2 wrong: %+v", seed[1])
	}

	if _, err := LoadSeedFile("nonexistent.yaml"); err == nil {
		t.Error("expected error for non-existent file")
	}
}
