package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quayside/cardboard/internal/board"
	"github.com/quayside/cardboard/internal/launch"
	"github.com/quayside/cardboard/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the interactive card board",
	Long: `Pick renders the board's cards as a clickable grid in the terminal.
Click a card (or move with the arrow keys and press enter) to make it the
active card and open its URL in your browser. Cards without a URL are
highlighted but go nowhere.

You can specify a board using the --board flag, which will look for the board
in your board library (XDG_DATA_HOME/cardboard/boards) or as a relative path.
If no board is specified, the default board from your config will be used.

Examples:
  cardboard pick
  cardboard pick --board ocean-dashboards
  cardboard pick --board ./custom-board`,
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

		// Browser child output would scribble over the alt screen.
		launch.Quiet()

		m := ui.New(b.Name, b.Cards(), launch.Browser{})
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running board: %v", err)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringP("board", "b", "", "Specify a board from your board library or a path to a board")
}
