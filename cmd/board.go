package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quayside/cardboard/internal/board"
	"github.com/quayside/cardboard/internal/config"
	"github.com/spf13/cobra"
)

// boardCmd represents the board command group
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage boards in your board library",
	Long:  `Commands for managing boards in your board library.`,
}

// boardListCmd represents the board list command
var boardListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available boards in your board library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, err := filepath.EvalSymlinks(config.GetBoardLibraryPath())
		if err != nil {
			fmt.Printf("Error resolving symbolic link: %v\n", err)
			return
		}

		// Check if board library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Board library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'cardboard board init' to create it.")
			return
		}

		// Get default board
		defaultBoard, err := config.GetDefaultBoard()
		if err != nil {
			fmt.Printf("Error getting default board: %v\n", err)
			return
		}

		// Read the board library directory
		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading board library: %v\n", err)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No boards found in your board library.")
			fmt.Println("You can add boards by copying them to:", libraryPath)
			return
		}

		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				fmt.Printf("Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}

			// Check if the resolved entry is a directory
			if fileInfo.IsDir() {
				b, err := board.Load(entryPath)

				if err != nil {
					// Not a valid board, skip
					continue
				}

				if entry.Name() == defaultBoard {
					fmt.Printf("* %s (%s) [DEFAULT]\n", entry.Name(), b.Name)
				} else {
					fmt.Printf("  %s (%s)\n", entry.Name(), b.Name)
				}
			}
		}
	},
}

// boardSetDefaultCmd represents the board set-default command
var boardSetDefaultCmd = &cobra.Command{
	Use:   "set-default [board_name]",
	Short: "Set the default board",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		boardName := args[0]

		// Check if the board exists
		boardPath, err := config.GetBoardPath(boardName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Try to load the board to make sure it's valid
		_, err = board.Load(boardPath)
		if err != nil {
			fmt.Printf("Error: Not a valid board - %v\n", err)
			return
		}

		// Set as default
		err = config.SetDefaultBoard(boardName)
		if err != nil {
			fmt.Printf("Error setting default board: %v\n", err)
			return
		}

		fmt.Printf("Default board set to: %s\n", boardName)
	},
}

// boardInitCmd represents the board init command
var boardInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the board library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetBoardLibraryPath()

		// Create the board library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating board library: %v\n", err)
			return
		}

		fmt.Println("Board library initialized at:", libraryPath)
		fmt.Println("You can now add boards by copying them to this directory.")

		// Initialize config
		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

func init() {
	RootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardSetDefaultCmd)
	boardCmd.AddCommand(boardInitCmd)
}
