package cmd

import (
	"bufio"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaForce bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Drop and recreate all tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !schemaForce {
			in := bufio.NewReader(cmd.InOrStdin())
			if !promptYesNo(in, cmd.OutOrStdout(), "This drops every table and all its data. Continue?") {
				color.Yellow("Aborted")
				return nil
			}
		}
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()
		if err := store.RecreateSchema(); err != nil {
			return err
		}
		color.Green("Schema recreated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVarP(&schemaForce, "force", "f", false, "skip the confirmation prompt")
}
