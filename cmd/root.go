// Package cmd implements the transitseed command line interface.
package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	secretsPath string
	databaseURI string

	mainLog = log.New(os.Stdout, "", log.Ldate|log.Ltime)
)

var rootCmd = &cobra.Command{
	Use:   "transitseed",
	Short: "Populate a public transit database with consistent synthetic data",
	Long: `transitseed manages a PostgreSQL database modeling a public transit
operator (users, drivers, vehicles, stops, lines, rides, tickets, fines)
and fills it with randomly generated, internally consistent data.

The connection string is taken from --database-uri, the DATABASE_URI
environment variable (a .env file is honored), or the databaseURI key of
the keybox file given with --secrets, in that order.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringVar(&secretsPath, "secrets", "secrets.json", "keybox file holding the databaseURI key")
	rootCmd.PersistentFlags().StringVar(&databaseURI, "database-uri", "", "PostgreSQL connection string (overrides environment and keybox)")
}

func initEnv() {
	godotenv.Load()
}
