package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/techridge/demand/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [roster-dir]",
	Short: "Validate roster files and print an issue report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := config.NewRosterLoader()
		report, err := loader.ValidateDir(args[0])
		if err != nil {
			log.Fatal(err)
		}

		errs := report.Errors()
		warnings := report.Warnings()

		fmt.Printf("Files checked: %d\n", report.FilesChecked)
		fmt.Printf("Errors: %d\n", len(errs))
		fmt.Printf("Warnings: %d\n\n", len(warnings))

		if len(errs) > 0 {
			fmt.Println("ERRORS:")
			for _, issue := range errs {
				fmt.Printf("  %s\n", issue)
			}
			fmt.Println()
		}
		if len(warnings) > 0 {
			fmt.Println("WARNINGS:")
			for _, issue := range warnings {
				fmt.Printf("  %s\n", issue)
			}
			fmt.Println()
		}

		switch {
		case len(errs) > 0:
			fmt.Println("Validation failed with errors")
			os.Exit(1)
		case len(warnings) > 0:
			fmt.Println("Validation completed with warnings")
		default:
			fmt.Println("All validation checks passed")
		}
	},
}
