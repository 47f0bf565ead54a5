package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/importer"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

var importSheets []string

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Import an XLSX workbook into the branch database",
	Long: `Import reads a workbook, recognizes its sheets by name or content, and
creates or updates the matching records. Rows that fail validation are
reported individually and never abort the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, log, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		wb, err := workbook.Open(args[0])
		if err != nil {
			return fmt.Errorf("open workbook: %w", err)
		}

		selected := importSheets
		if len(selected) == 0 {
			for _, sheet := range wb.Sheets {
				selected = append(selected, sheet.Name)
			}
		}

		imp := importer.New(repos, log)
		report, err := imp.ImportWorkbook(cmd.Context(), wb, selected)
		if err != nil {
			return fmt.Errorf("import aborted: %w", err)
		}

		renderReport(report)
		if report.ErrorCount > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringSliceVar(&importSheets, "sheets", nil,
		"Sheets to import (default: all sheets in the file)")
	rootCmd.AddCommand(importCmd)
}

// renderReport prints the aggregate import outcome to stdout
func renderReport(report *models.ImportReport) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	green.Printf("  %d row(s) imported\n", report.SuccessCount)
	if report.ErrorCount > 0 {
		red.Printf("  %d row(s) failed\n", report.ErrorCount)
	}

	if len(report.Warnings) > 0 {
		fmt.Println()
		yellow.Println("Warnings:")
		for _, w := range report.Warnings {
			yellow.Printf("  - %s\n", w)
		}
	}

	if len(report.Errors) > 0 {
		fmt.Println()
		red.Println("Errors:")
		for _, e := range report.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if len(report.NewUsers) > 0 {
		fmt.Println()
		fmt.Println("Generated credentials (shown once, passwords are stored hashed):")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Username", "Password"})
		table.SetBorder(false)
		for _, cred := range report.NewUsers {
			table.Append([]string{cred.Username, cred.Password})
		}
		table.Render()
	}

	fmt.Println()
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Total: %d succeeded, %d failed, %d warning(s)\n",
		report.SuccessCount, report.ErrorCount, len(report.Warnings))
}
