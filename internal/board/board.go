package board

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/quayside/cardboard/internal/card"
)

// Board represents a loaded board of launcher cards
type Board struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	cards []*card.Card
	byID  map[string]*card.Card

	// Raw config data
	config *Config
}

// Load loads a board from a directory containing board.toml
func Load(boardPath string) (*Board, error) {
	tomlPath := filepath.Join(boardPath, "board.toml")
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("board.toml not found in %s", boardPath)
	}

	var config Config
	if _, err := toml.DecodeFile(tomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing board.toml: %v", err)
	}

	b := &Board{
		ID:          config.Board.ID,
		Name:        config.Board.Name,
		Version:     config.Board.Version,
		Author:      config.Board.Author,
		Description: config.Board.Description,
		Path:        boardPath,
		byID:        make(map[string]*card.Card),
		config:      &config,
	}

	if err := b.loadCards(); err != nil {
		return nil, fmt.Errorf("error loading cards: %v", err)
	}

	return b, nil
}

// loadCards builds the card collection from the config, preserving file
// order. A board with no cards is valid and yields an empty collection.
func (b *Board) loadCards() error {
	for i, entry := range b.config.Cards {
		if entry.Category == "" || entry.Subcategory == "" {
			return fmt.Errorf("card %d is missing a category or subcategory", i+1)
		}

		id := entry.ID
		if id == "" {
			id = card.CanonicalID(entry.Category, entry.Subcategory)
		}
		if _, exists := b.byID[id]; exists {
			return fmt.Errorf("duplicate card ID: %s", id)
		}

		c := &card.Card{
			ID:          id,
			Category:    entry.Category,
			Subcategory: entry.Subcategory,
			URL:         entry.URL,
			Icon:        entry.Icon,
		}

		b.cards = append(b.cards, c)
		b.byID[id] = c
	}

	return nil
}

// Cards returns all cards on the board in file order.
func (b *Board) Cards() []*card.Card {
	return b.cards
}

// Card gets a card by its canonical ID
func (b *Board) Card(cardID string) (*card.Card, error) {
	c, ok := b.byID[cardID]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", cardID)
	}
	return c, nil
}

// ActiveCard returns the active card, or nil when no card has been clicked.
func (b *Board) ActiveCard() *card.Card {
	for _, c := range b.cards {
		if c.Active {
			return c
		}
	}
	return nil
}

// Board configuration structures
type Config struct {
	Board Section     `toml:"board"`
	Cards []CardEntry `toml:"cards"`
}

type Section struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Website       string   `toml:"website"`
	Tags          []string `toml:"tags"`
}

type CardEntry struct {
	ID          string `toml:"id"`
	Category    string `toml:"category"`
	Subcategory string `toml:"subcategory"`
	URL         string `toml:"url"`
	Icon        string `toml:"icon"`
}
