package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/config"
	"github.com/techridge/demand/internal/domain"
	"github.com/techridge/demand/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [roster-dir]",
	Short: "Serve the demand API over HTTP",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Optional .env for deployment settings; absence is fine.
		_ = godotenv.Load()

		loader := config.NewRosterLoader()
		employers, err := loader.LoadDir(args[0])
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

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			addr = ":" + port
		}

		engine := calculation.NewDefaultEngine()
		srv := server.NewServer(engine, employers, supply)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default: :$PORT or :8080)")
	serveCmd.Flags().String("supply", "", "Path to a supply configuration file")
}
