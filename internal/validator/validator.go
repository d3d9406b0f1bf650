package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/quayside/cardboard/internal/board"
	"github.com/quayside/cardboard/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	BoardPath string
	Results   ValidationResults
}

func NewValidator(boardPath string) *Validator {
	return &Validator{
		BoardPath: boardPath,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	config, err := v.validateBoardToml()
	if err != nil {
		return v.Results, err
	}

	v.validateCards(config)
	v.validateIcons(config)

	return v.Results, nil
}

// validateBoardToml checks that board.toml exists, parses, and carries the
// required board metadata.
func (v *Validator) validateBoardToml() (*board.Config, error) {
	boardTomlPath := filepath.Join(v.BoardPath, "board.toml")
	if _, err := os.Stat(boardTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("board.toml not found in %s", v.BoardPath)
	}

	var config board.Config
	if _, err := toml.DecodeFile(boardTomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing board.toml: %v", err)
	}

	if config.Board.ID == "" {
		v.Results.Errors = append(v.Results.Errors, "board.id is required in board.toml")
	}

	if config.Board.Name == "" {
		v.Results.Errors = append(v.Results.Errors, "board.name is required in board.toml")
	}

	if config.Board.SchemaVersion == "" {
		v.Results.Errors = append(v.Results.Errors, "board.schema_version is required in board.toml")
	} else if config.Board.SchemaVersion != "1.0" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported schema_version: %s (supported: 1.0)", config.Board.SchemaVersion))
	}

	return &config, nil
}

// validateCards checks per-card labels, duplicate IDs, and warns about
// cards without a destination. A URL-less card is usable, it just has
// nowhere to go when clicked.
func (v *Validator) validateCards(config *board.Config) {
	if len(config.Cards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "board has no cards")
		return
	}

	seen := map[string]bool{}
	for i, entry := range config.Cards {
		if entry.Category == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d is missing a category", i+1))
		}
		if entry.Subcategory == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d is missing a subcategory", i+1))
		}
		if entry.Category == "" || entry.Subcategory == "" {
			continue
		}

		id := entry.ID
		if id == "" {
			id = card.CanonicalID(entry.Category, entry.Subcategory)
		}
		if seen[id] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card ID: %s", id))
		}
		seen[id] = true

		if entry.URL == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("no URL specified for %s > %s", entry.Category, entry.Subcategory))
		}
	}
}

// validateIcons checks that referenced icon files exist inside the board
// directory.
func (v *Validator) validateIcons(config *board.Config) {
	for _, entry := range config.Cards {
		if entry.Icon == "" {
			continue
		}

		iconPath := filepath.Join(v.BoardPath, entry.Icon)
		if _, err := os.Stat(iconPath); os.IsNotExist(err) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("icon not found: %s", entry.Icon))
		}
	}
}
