package service

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/app/store/sqlstore"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/usage"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "coaching service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	utils.SetupIDWorker(1)
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	serve(app)
	return nil
}

// NewMigrateCommand applies the embedded schema files and exits.
func NewMigrateCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "install database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := core.MustLoadBaseConfig(opts.ConfigPath)
			provider := sqlstore.MustSetup(cfg.Postgres)
			if err := provider().Install(); err != nil {
				return err
			}
			fmt.Println("schema up to date")
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// NewUsageCommand prints the cost overview from the local ledger file.
func NewUsageCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "print API usage and cost report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := core.MustLoadBaseConfig(opts.ConfigPath)
			ledger, err := usage.NewLedger(cfg.Coach.LedgerPath)
			if err != nil {
				return err
			}
			printUsageReport(ledger.Report())
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func printUsageReport(report types.UsageReport) {
	fmt.Println("💰 API-ANVÄNDNING OCH KOSTNAD")
	fmt.Println("==================================================")

	printSummary("Idag", report.Today)
	printSummary("Igår", report.Yesterday)

	fmt.Println("\n📅 Denna månad")
	fmt.Println("------------------------------")
	fmt.Printf("Requests:   %d\n", report.Month.TotalRequests)
	fmt.Printf("Tokens:     %d\n", report.Month.TotalTokens)
	fmt.Printf("Kostnad:    $%.4f (%.2f SEK)\n", report.Month.TotalCostUSD, report.Month.TotalCostSEK)
	fmt.Printf("Snitt/req:  $%.4f\n", report.Month.AvgCostPerRequest)

	if len(report.Recommendations) > 0 {
		fmt.Println("\n🎯 REKOMMENDATIONER")
		fmt.Println("------------------------------")
		for _, r := range report.Recommendations {
			fmt.Println(r)
		}
	}
}

func printSummary(label string, s types.UsageSummary) {
	fmt.Printf("\n📊 %s\n", label)
	fmt.Println("------------------------------")
	fmt.Printf("Requests:   %d\n", s.TotalRequests)
	fmt.Printf("Tokens:     %d\n", s.TotalTokens)
	fmt.Printf("Kostnad:    $%.4f (%.2f SEK)\n", s.TotalCostUSD, s.TotalCostSEK)
}
