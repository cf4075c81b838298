package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/config"
	"github.com/techridge/demand/internal/domain"
	"github.com/techridge/demand/internal/output"
)

var overviewCmd = &cobra.Command{
	Use:   "overview [roster-dir]",
	Short: "Generate the demand-versus-supply overview JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := config.NewRosterLoader()
		employers, err := loader.LoadDir(args[0])
		if err != nil {
			log.Fatal(err)
		}

		years, err := overviewYears(cmd, employers)
		if err != nil {
			log.Fatal(err)
		}

		var supply *domain.SupplyConfig
		if supplyPath, _ := cmd.Flags().GetString("supply"); supplyPath != "" {
			supply, err = loader.LoadSupply(supplyPath)
			if err != nil {
				log.Fatal(err)
			}
		}

		engine := calculation.NewDefaultEngine()
		bases := []domain.IncomeBasis{domain.IncomeBasisBase, domain.IncomeBasisOTE}
		report, err := engine.Overview(employers, years, bases, domain.DefaultRateScenarios(), supply)
		if err != nil {
			log.Fatal(err)
		}

		jf := &output.JSONFormatter{Pretty: true}
		out, err := jf.Format(report)
		if err != nil {
			log.Fatal(err)
		}

		if outputPath, _ := cmd.Flags().GetString("output"); outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(out+"\n"), 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Overview written to %s\n", outputPath)
			return
		}
		fmt.Println(out)
	},
}

// overviewYears resolves the --years flag, defaulting to a five-year window
// from the first employer's base year.
func overviewYears(cmd *cobra.Command, employers []domain.Employer) ([]int, error) {
	raw, _ := cmd.Flags().GetString("years")
	if raw == "" {
		base := employers[0].BaseYear
		years := make([]int, 0, 5)
		for y := base; y < base+5; y++ {
			years = append(years, y)
		}
		return years, nil
	}
	return parseYears(strings.Split(raw, ","))
}

func init() {
	overviewCmd.Flags().String("years", "", "Comma-separated target years (default: base year through base year + 4)")
	overviewCmd.Flags().String("supply", "", "Path to a supply configuration file")
	overviewCmd.Flags().String("output", "", "Write JSON to a file instead of stdout")
}
