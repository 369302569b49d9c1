package models

// SeedEntry is one roster row as provided at startup. Order in the seed
// list fixes the row order for the whole session.
type SeedEntry struct {
	Name string `yaml:"name"`
	Lap1 string `yaml:"lap1"`
	Lap2 string `yaml:"lap2"`
}

// DefaultSeed returns the built-in roster used when no seed file is
// configured.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Name: "Sebas Diniz", Lap1: "34,142"},
		{Name: "Jenning de Boo", Lap1: "34,361"},
		{Name: "Merijn Scheperkamp", Lap1: "34,649"},
		{Name: "Joep Wennemars", Lap1: "34,671"},
		{Name: "Tim Prins", Lap1: "34,820"},
		{Name: "Kayo Vos", Lap1: "34,833"},
		{Name: "Janno Botman", Lap1: "34,986"},
		{Name: "Tijmen Snel", Lap1: "35,038"},
		{Name: "Mats van den Bos", Lap1: "35,188"},
		{Name: "Stefan Westenbroek", Lap1: "39,556"},
	}
}
