package main

import (
	"fmt"
	"math"
	"os"

	_ "wetrade/docs"
	"wetrade/internal/adapter/http/routes"
	"wetrade/internal/config"
	"wetrade/internal/domain/entities"
	"wetrade/internal/logging"
	"wetrade/internal/usecase"

	"github.com/dustin/go-humanize"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           WeTrade API
// @version         1.0
// @description     WeTrade storefront: catalog, loan calculator, AI market valuation and messaging handoff.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "wetrade",
		Short:        "WeTrade storefront API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default $WETRADE_CONFIG or ./config.yaml)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		logging.Configure(cfg.Log.Level, cfg.Log.Format)
		return cfg, nil
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return routes.Run(cfg)
		},
	}

	var principal int64
	var duration int
	quote := &cobra.Command{
		Use:   "quote",
		Short: "Print a loan quote with its paydown schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			uc := usecase.NewLoanUseCase(entities.LoanTerms{
				MinPrincipal:  cfg.Loan.MinPrincipal,
				MaxPrincipal:  cfg.Loan.MaxPrincipal,
				PrincipalStep: cfg.Loan.PrincipalStep,
				MonthlyRate:   cfg.Loan.MonthlyRate,
				Durations:     cfg.Loan.Durations,
			})
			q, err := uc.Quote(principal, duration)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Principal:       ₦%s\n", humanize.Comma(q.Principal))
			fmt.Fprintf(out, "Duration:        %d months at %.0f%%/month\n", q.Duration, q.MonthlyRate*100)
			fmt.Fprintf(out, "Total interest:  ₦%s\n", naira(q.TotalInterest))
			fmt.Fprintf(out, "Total repayment: ₦%s\n", naira(q.TotalRepayment))
			fmt.Fprintf(out, "Monthly:         ₦%s\n", naira(q.MonthlyRepayment))
			for _, p := range q.Schedule {
				fmt.Fprintf(out, "  %-6s ₦%s\n", p.Label, naira(p.Balance))
			}
			return nil
		},
	}
	quote.Flags().Int64Var(&principal, "principal", 500000, "loan principal")
	quote.Flags().IntVar(&duration, "duration", 3, "duration in months")

	root.AddCommand(serve, quote)
	// No subcommand means serve.
	root.RunE = serve.RunE
	return root
}

func naira(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
