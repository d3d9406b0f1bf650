package cmd

import (
	"fmt"
	"os"

	"github.com/quayside/cardboard/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a board directory",
	Long: `Validate checks if a board directory is usable: board.toml parses, the
required metadata is present, card labels and IDs are well-formed, and
referenced icon files exist. Cards without a URL are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardPath := args[0]

		// Check if path exists
		if _, err := os.Stat(boardPath); os.IsNotExist(err) {
			return fmt.Errorf("board directory not found: %s", boardPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(boardPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Board '%s' is valid.\n", boardPath)
		} else {
			fmt.Printf("❌ Board '%s' has %d validation errors:\n", boardPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
