// Command validate provides a small CLI that validates rule preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Positive money amounts (salary, bail, start_cash)
//   - Player count bounds (2-8 seats)
//   - Log limit sanity
//   - Economy: starting cash must cover bail and the cheapest ownable tile,
//     so a fresh game can never open in a degenerate position
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"boardwalk/game/engine"
)

// Config mirrors the JSON schema for a rule preset.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Salary      int    `json:"salary"`
	Bail        int    `json:"bail"`
	StartCash   int    `json:"start_cash"`
	MaxPlayers  int    `json:"max_players"`
	LogLimit    int    `json:"log_limit"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single preset JSON file. It performs
// structural checks, field bounds, and an economy analysis against the board.
func validateConfig(filePath string) ValidationResult {
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

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate identity
	if strings.TrimSpace(config.Name) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	// Validate money settings
	if config.Salary <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("salary must be positive, got %d", config.Salary))
	}

	if config.Bail <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("bail must be positive, got %d", config.Bail))
	}

	if config.StartCash <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_cash must be positive, got %d", config.StartCash))
	}

	// Validate seating
	if config.MaxPlayers < 2 || config.MaxPlayers > 8 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_players must be between 2 and 8, got %d", config.MaxPlayers))
	}

	// Validate log settings
	if config.LogLimit <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("log_limit must be positive, got %d", config.LogLimit))
	}

	// Economy validation against the static board
	if result.Valid {
		economyResult := validateEconomy(&config)
		if !economyResult.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, economyResult.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Salary: $%d", config.Salary))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Bail: $%d", config.Bail))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start cash: $%d", config.StartCash))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Max players: %d", config.MaxPlayers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Log limit: %d entries", config.LogLimit))
	}

	return result
}

// validateEconomy checks the preset's money numbers against the static board.
// A preset where a fresh player cannot afford bail or any property at all
// produces games that stall, so those are rejected rather than warned about.
func validateEconomy(config *Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	cheapest, priciest := 0, 0
	ownable := 0
	for _, tile := range engine.Tiles() {
		if !tile.Ownable() {
			continue
		}
		ownable++
		if cheapest == 0 || tile.Price < cheapest {
			cheapest = tile.Price
		}
		if tile.Price > priciest {
			priciest = tile.Price
		}
	}

	if config.StartCash < config.Bail {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_cash (%d) cannot cover bail (%d); a jailed opener would be forced bankrupt", config.StartCash, config.Bail))
	}

	if config.StartCash < cheapest {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_cash (%d) cannot buy the cheapest tile (%d); no property can ever change hands", config.StartCash, cheapest))
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Economy: %d ownable tiles priced $%d-$%d", ownable, cheapest, priciest))
		if config.StartCash >= priciest {
			result.Errors = append(result.Errors, "✓ Economy: starting cash covers every tile on the board")
		}
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
