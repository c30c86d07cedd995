package engine

import "fmt"

// ValidateBoardConfig checks that a board variant is self-consistent and
// within supported bounds.
func ValidateBoardConfig(config *BoardConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config name is required")
	}
	if config.Houses < MinHouses || config.Houses > MaxHouses {
		return fmt.Errorf("houses must be between %d and %d, got %d",
			MinHouses, MaxHouses, config.Houses)
	}
	if config.Seeds < MinSeeds || config.Seeds > MaxSeeds {
		return fmt.Errorf("seeds must be between %d and %d, got %d",
			MinSeeds, MaxSeeds, config.Seeds)
	}
	return nil
}
