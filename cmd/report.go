package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/citytransit/transitseed/reports"
)

var reportExec bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the reporting queries, optionally executing them",
	Long: `report prints the SQL of the fixed reporting queries so they can be
used with any client. With --exec the queries also run against the
database and their results are tabulated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		all := reports.All()

		if !reportExec {
			for _, report := range all {
				sqlText, sqlArgs, err := report.SQL()
				if err != nil {
					return err
				}
				color.Cyan("-- %s", report.Name)
				fmt.Fprintln(out, sqlText)
				if len(sqlArgs) > 0 {
					fmt.Fprintf(out, "-- arguments: %v\n", sqlArgs)
				}
				fmt.Fprintln(out)
			}
			return nil
		}

		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		for _, report := range all {
			color.Cyan("-- %s", report.Name)
			rows, err := report.Run(store.Node())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(report.Columns, "\t"))
			for _, row := range rows {
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d rows\n\n", len(rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportExec, "exec", false, "run the queries against the database")
}
