// Package cli implements the qadmin command line tool. It talks to the
// database directly, without going through the HTTP server, so imports and
// exports can be run from a shell on the branch machine.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/config"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qadmin",
	Short: "Branch management tool for Quran association data",
	Long: `qadmin imports and exports branch data workbooks.

It reads database settings from the environment (or a .env file in the
working directory), the same way the server does.

Example Usage:
  qadmin import registry.xlsx                # Import every sheet
  qadmin import registry.xlsx --sheets الطلاب  # Import selected sheets
  qadmin export --out export.xlsx            # Export all entities to XLSX
  qadmin template --out template.xlsx        # Generate an import template`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup opens the database and builds the repositories. The returned closer
// must be called when the command finishes.
func setup() (*repository.Repositories, zerolog.Logger, func(), error) {
	godotenv.Load()

	log := logger.New()
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		// Keep command output readable; log only problems
		log = log.Level(zerolog.WarnLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, log, nil, fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, log, nil, fmt.Errorf("connect to database: %w", err)
	}

	repos := repository.New(db)
	return repos, log, func() { db.Close() }, nil
}
