// Command validate checks the board preset JSON files in the configs
// directory. It verifies:
//   - JSON structure and required fields
//   - House and seed counts within the engine's supported bounds
//   - That preset names match their filenames
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MegaCode111REAL/mancala-web/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset engine.BoardConfig
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateBoardConfig(&preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	expectedName := strings.TrimSuffix(result.File, ".json")
	if preset.Name != "" && preset.Name != expectedName {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Preset name %q does not match filename %q", preset.Name, expectedName))
	}

	return result
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	entries, err := os.ReadDir(configDir)
	if err != nil {
		fmt.Printf("Failed to read config directory %s: %v\n", configDir, err)
		os.Exit(1)
	}

	failed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		result := validatePreset(filepath.Join(configDir, entry.Name()))
		if result.Valid {
			fmt.Printf("✓ %s\n", result.File)
			continue
		}

		failed++
		fmt.Printf("✗ %s\n", result.File)
		for _, msg := range result.Errors {
			fmt.Printf("    %s\n", msg)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
