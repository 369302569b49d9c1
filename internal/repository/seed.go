package repository

import (
	"fmt"
	"os"

	"github.com/Llorsque/500-tool/internal/models"

	"gopkg.in/yaml.v3"
)

// LoadSeedFile reads a YAML roster seed: a list of {name, lap1, lap2}
// entries whose order fixes the row order for the session.
func LoadSeedFile(path string) ([]models.SeedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed []models.SeedEntry
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed, nil
}
