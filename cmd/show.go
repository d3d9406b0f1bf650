package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/quayside/cardboard/internal/ansi"
	"github.com/quayside/cardboard/internal/board"
	"github.com/quayside/cardboard/internal/card"
	"github.com/quayside/cardboard/internal/config"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Icon thumbnail dimensions in terminal cells.
const (
	iconWidth  = 24
	iconHeight = 12
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with its icon as ANSI art",
	Long: `Show displays detailed information about a card, rendering its icon
image as ANSI terminal art when the board provides one.
Use canonical card IDs like 'tools.editor' or 'docs.guide'.

You can specify a board using the --board flag, which will look for the board
in your board library (XDG_DATA_HOME/cardboard/boards) or as a relative path.
If no board is specified, the default board from your config will be used.

Examples:
  cardboard show tools.editor
  cardboard show --board ocean-dashboards docs.guide
  cardboard show --board ./custom-board tools.editor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		boardFlag, _ := cmd.Flags().GetString("board")

		boardPath, err := resolveBoardPath(boardFlag)
		if err != nil {
			return err
		}

		// Check if path exists
		if _, err := os.Stat(boardPath); os.IsNotExist(err) {
			return fmt.Errorf("board directory not found: %s", boardPath)
		}

		b, err := board.Load(boardPath)
		if err != nil {
			return fmt.Errorf("error loading board: %v", err)
		}

		c, err := b.Card(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		art, err := loadIconArt(boardPath, c)
		if err != nil {
			return fmt.Errorf("error rendering icon: %v", err)
		}

		displayCard(c, art, b.Name)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("board", "b", "", "Specify a board from your board library or a path to a board")
}

// loadIconArt renders the card's icon as ANSI art through the cache, or
// returns an empty string for cards without an icon.
func loadIconArt(boardPath string, c *card.Card) (string, error) {
	if c.Icon == "" {
		return "", nil
	}

	iconPath := filepath.Join(boardPath, c.Icon)
	if _, err := os.Stat(iconPath); os.IsNotExist(err) {
		return "", fmt.Errorf("icon not found: %s", c.Icon)
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	r := ansi.Renderer{Width: iconWidth, Height: iconHeight}
	return r.RenderFileCached(iconPath, cacheDir)
}

// displayCard displays the card information beside its icon art
func displayCard(c *card.Card, art, boardName string) {
	artLines := []string{}
	maxArtWidth := 0
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
		for _, line := range artLines {
			if w := ansi.VisibleWidth(line); w > maxArtWidth {
				maxArtWidth = w
			}
		}
	}

	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card:     ")+colorize.HiWhiteString("%s", c.Label()))
	infoLines = append(infoLines, colorize.CyanString("Board:    ")+colorize.HiWhiteString(boardName))
	infoLines = append(infoLines, colorize.CyanString("ID:       ")+colorize.HiWhiteString(c.ID))
	infoLines = append(infoLines, colorize.CyanString("Category: ")+colorize.HiWhiteString(c.Category))
	infoLines = append(infoLines, colorize.CyanString("Subcat:   ")+colorize.HiWhiteString(c.Subcategory))

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	// Available width for wrapped text, with a small margin
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if c.URL != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("URL:"))
		infoLines = append(infoLines, ansi.Wrap(c.URL, infoWidth)...)
	} else {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.YellowString("No URL specified for this card."))
	}

	fmt.Println()

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-ansi.VisibleWidth(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
