package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quayside/cardboard/internal/board"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards on a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		boardFlag, _ := cmd.Flags().GetString("board")

		boardPath, err := resolveBoardPath(boardFlag)
		if err != nil {
			return err
		}

		b, err := board.Load(boardPath)
		if err != nil {
			return fmt.Errorf("error loading board: %v", err)
		}

		fmt.Printf("%s (%s)\n", b.Name, b.ID)

		if len(b.Cards()) == 0 {
			fmt.Println("No cards on this board.")
			return nil
		}

		for _, c := range b.Cards() {
			line := fmt.Sprintf("  %-28s %s > %s", c.ID, c.Category, c.Subcategory)
			if c.URL == "" {
				fmt.Printf("%s %s\n", line, color.YellowString("(no url)"))
			} else {
				fmt.Printf("%s %s\n", line, color.CyanString(c.URL))
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringP("board", "b", "", "Specify a board from your board library or a path to a board")
}
