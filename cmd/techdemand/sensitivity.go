package main

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/config"
	"github.com/techridge/demand/internal/domain"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [roster-dir]",
	Short: "Sweep aggregate demand across the standard rate scenarios",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := config.NewRosterLoader()
		employers, err := loader.LoadDir(args[0])
		if err != nil {
			log.Fatal(err)
		}

		scenario, err := scenarioFromFlags(cmd, employers)
		if err != nil {
			log.Fatal(err)
		}

		rateScenarios := domain.DefaultRateScenarios()
		rates := make([]decimal.Decimal, 0, len(rateScenarios))
		for _, rs := range rateScenarios {
			rates = append(rates, rs.Rate)
		}

		engine := calculation.NewDefaultEngine()
		table, err := engine.Mortgage.BuildLookup(rates)
		if err != nil {
			log.Fatal(err)
		}

		summaries := make([]domain.DemandSummary, 0, len(rateScenarios))
		for _, rs := range rateScenarios {
			scenario.Rate = rs.Rate
			summary, err := engine.AggregateDemand(employers, scenario, table)
			if err != nil {
				log.Fatal(err)
			}
			summaries = append(summaries, *summary)
		}

		format, _ := cmd.Flags().GetString("format")
		if err := printSummaries(summaries, format); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	sensitivityCmd.Flags().Int("year", 0, "Target year (default: first employer's base year)")
	sensitivityCmd.Flags().String("basis", "base", "Income basis: base or ote")
	sensitivityCmd.Flags().String("format", "table", "Output format: table, csv or json")
}
