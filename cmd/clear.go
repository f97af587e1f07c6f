package cmd

import (
	"bufio"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all rows from all tables",
	Long: `clear empties every table in reverse dependency order, keeping the
schema in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			in := bufio.NewReader(cmd.InOrStdin())
			if !promptYesNo(in, cmd.OutOrStdout(), "This deletes every row in the database. Continue?") {
				color.Yellow("Aborted")
				return nil
			}
		}
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()
		if err := store.ClearAll(); err != nil {
			return err
		}
		color.Green("All tables cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip the confirmation prompt")
}
