package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quayside/cardboard/internal/board"
	"github.com/quayside/cardboard/internal/diag"
	"github.com/quayside/cardboard/internal/launch"
	"github.com/quayside/cardboard/internal/selector"
)

var openCmd = &cobra.Command{
	Use:   "open [card_id]",
	Short: "Click a single card without the interactive board",
	Long: `Open runs the click behavior for one card: it becomes the board's
active card and its URL opens in your browser. Cards are addressed by
canonical ID, e.g. 'tools.editor' or 'docs.guide'.

Examples:
  cardboard open tools.editor
  cardboard open --board ocean-dashboards docs.guide`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		boardFlag, _ := cmd.Flags().GetString("board")

		boardPath, err := resolveBoardPath(boardFlag)
		if err != nil {
			return err
		}

		b, err := board.Load(boardPath)
		if err != nil {
			return fmt.Errorf("error loading board: %v", err)
		}

		c, err := b.Card(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		sel := selector.New(launch.Browser{}, diag.NewTextSink(os.Stderr))
		sel.Bind(b.Cards())
		sel.Click(c)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(openCmd)

	openCmd.Flags().StringP("board", "b", "", "Specify a board from your board library or a path to a board")
}
