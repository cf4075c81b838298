package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/config"
	"github.com/techridge/demand/internal/domain"
	"github.com/techridge/demand/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "techdemand",
	Short: "Techridge housing demand calculator",
	Long:  "Affordability and demand model for the Techridge residential development: estimates how many employee households can reach each housing product under a chosen rate, year and income basis.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "techdemand %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var demandCmd = &cobra.Command{
	Use:   "demand [roster-dir]",
	Short: "Compute per-employer and aggregate housing demand",
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

		engine := calculation.NewDefaultEngine()
		table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{scenario.Rate})
		if err != nil {
			log.Fatal(err)
		}

		employerName, _ := cmd.Flags().GetString("employer")
		var summaries []domain.DemandSummary
		if employerName != "" {
			employer := findEmployer(employers, employerName)
			if employer == nil {
				log.Fatalf("unknown employer %q", employerName)
			}
			summary, err := engine.EmployerDemand(employer, scenario, table)
			if err != nil {
				log.Fatal(err)
			}
			summaries = append(summaries, *summary)
		} else {
			for i := range employers {
				summary, err := engine.EmployerDemand(&employers[i], scenario, table)
				if err != nil {
					log.Fatal(err)
				}
				summaries = append(summaries, *summary)
			}
			aggregate, err := engine.AggregateDemand(employers, scenario, table)
			if err != nil {
				log.Fatal(err)
			}
			summaries = append(summaries, *aggregate)
		}

		format, _ := cmd.Flags().GetString("format")
		if err := printSummaries(summaries, format); err != nil {
			log.Fatal(err)
		}
	},
}

var affordabilityCmd = &cobra.Command{
	Use:   "affordability [income...]",
	Short: "Show max purchase price and reachable products for incomes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := calculation.NewDefaultEngine()

		rate := engine.Mortgage.Assumptions.FHARate
		if raw, _ := cmd.Flags().GetString("rate"); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				log.Fatalf("invalid rate %q", raw)
			}
			rate = parsed
		}

		results := make([]*domain.AffordabilityResult, 0, len(args))
		for _, arg := range args {
			income, err := decimal.NewFromString(arg)
			if err != nil {
				log.Fatalf("invalid income %q", arg)
			}
			result, err := engine.Mortgage.Affordability(income, rate)
			if err != nil {
				log.Fatal(err)
			}
			results = append(results, result)
		}

		tf := &output.TableFormatter{}
		fmt.Print(tf.FormatAffordability(results))
	},
}

// scenarioFromFlags builds a scenario from the shared --year/--basis/--rate
// flags, defaulting the year to the first employer's base year.
func scenarioFromFlags(cmd *cobra.Command, employers []domain.Employer) (domain.Scenario, error) {
	var scenario domain.Scenario

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 && len(employers) > 0 {
		year = employers[0].BaseYear
	}
	scenario.TargetYear = year

	rawBasis, _ := cmd.Flags().GetString("basis")
	basis, err := domain.ParseIncomeBasis(rawBasis)
	if err != nil {
		return scenario, err
	}
	scenario.IncomeBasis = basis

	scenario.Rate = domain.DefaultAssumptions().FHARate
	if rawRate, _ := cmd.Flags().GetString("rate"); rawRate != "" {
		rate, err := decimal.NewFromString(rawRate)
		if err != nil {
			return scenario, fmt.Errorf("invalid rate %q", rawRate)
		}
		if rate.Sign() < 0 {
			return scenario, fmt.Errorf("rate cannot be negative")
		}
		scenario.Rate = rate
	}
	return scenario, nil
}

func findEmployer(employers []domain.Employer, name string) *domain.Employer {
	for i := range employers {
		if employers[i].Name == name {
			return &employers[i]
		}
	}
	return nil
}

func printSummaries(summaries []domain.DemandSummary, format string) error {
	switch format {
	case "table", "":
		tf := &output.TableFormatter{}
		fmt.Print(tf.Format(summaries))
	case "csv":
		cf := &output.CSVFormatter{}
		out, err := cf.Format(summaries)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "json":
		jf := &output.JSONFormatter{Pretty: true}
		out, err := jf.Format(summaries)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", format)
	}
	return nil
}

func parseYears(parts []string) ([]int, error) {
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, year)
	}
	return years, nil
}

func init() {
	demandCmd.Flags().Int("year", 0, "Target year (default: first employer's base year)")
	demandCmd.Flags().String("basis", "base", "Income basis: base or ote")
	demandCmd.Flags().String("rate", "0.0615", "Annual interest rate as a decimal")
	demandCmd.Flags().String("employer", "", "Limit to a single employer")
	demandCmd.Flags().String("format", "table", "Output format: table, csv or json")

	affordabilityCmd.Flags().String("rate", "", "Annual interest rate as a decimal (default: FHA rate)")

	rootCmd.AddCommand(demandCmd)
	rootCmd.AddCommand(affordabilityCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
