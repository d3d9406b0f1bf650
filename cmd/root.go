package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quayside/cardboard/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardboard",
	Short: "Terminal launcher for boards of category cards",
	Long: `Cardboard is a command-line tool for managing boards of launcher cards.
Each card carries a category, a subcategory, and an optional URL; selecting a
card highlights it and opens its URL in your browser.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolveBoardPath turns a --board flag value into a board directory,
// falling back to the configured default board when the flag is empty.
func resolveBoardPath(boardFlag string) (string, error) {
	if boardFlag != "" {
		return config.GetBoardPath(boardFlag)
	}

	defaultBoard, err := config.GetDefaultBoard()
	if err != nil {
		return "", fmt.Errorf("error getting default board: %v", err)
	}

	boardPath, err := config.GetBoardPath(defaultBoard)
	if err != nil {
		return "", fmt.Errorf("error loading default board: %v", err)
	}

	return boardPath, nil
}
