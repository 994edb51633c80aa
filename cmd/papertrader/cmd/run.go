package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrader/bank"
	"github.com/rustyeddy/papertrader/bot"
	"github.com/rustyeddy/papertrader/config"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/market"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/rustyeddy/papertrader/strategies"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation from a config file",
	Long: `Run a full simulation using settings from a configuration file.

The config file specifies the account to register, the number of days to
simulate, the starting strategy, and where to journal trades.

Example:
  papertrader run -f simulation.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sink journal.Journal
	switch cfg.Journal.Type {
	case "csv":
		sink, err = journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.DaysFile)
	case "sqlite":
		sink, err = journal.NewSQLite(cfg.Journal.DBPath)
	default:
		sink = journal.Nop{}
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer sink.Close()

	ledger := bank.New()
	if err := ledger.Register(cfg.Account.Username, cfg.Account.Password, cfg.Account.Balance); err != nil {
		return fmt.Errorf("register account: %w", err)
	}
	if err := ledger.Login(cfg.Account.Username, cfg.Account.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	mkt := market.New(market.DefaultCatalog(), seed)
	trader := bot.New(mkt, ledger, sink)

	strat, err := strategies.ByName(cfg.Simulation.Strategy)
	if err != nil {
		return err
	}
	trader.SetStrategy(strat)
	trader.SetAutoSwitch(cfg.Simulation.AutoSwitch)

	session := sim.New(ledger, trader)

	fmt.Printf("Running simulation with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Balance: $%.2f)\n", cfg.Account.Username, cfg.Account.Balance)
	fmt.Printf("  Strategy: %s (auto-switch: %v)\n", trader.StrategyName(), cfg.Simulation.AutoSwitch)
	fmt.Printf("  Days: %d, Seed: %d\n\n", cfg.Simulation.Days, seed)

	trader.Start()
	for i := 0; i < cfg.Simulation.Days; i++ {
		day, deposited := session.AdvanceDay()
		if deposited > 0 {
			fmt.Printf("Day %d: %d scheduled deposit(s) executed\n", day, deposited)
		}
	}

	waited := session.EndWithProfit(cfg.Simulation.MaxWaitDays)

	fmt.Printf("=== SIMULATION ENDED ===\n\n")
	fmt.Printf("  Days elapsed:     %d (waited %d extra)\n", trader.Day(), waited)
	fmt.Printf("  Market condition: %s\n", trader.MarketCondition())
	fmt.Printf("  Trades executed:  %d\n", len(trader.History()))
	fmt.Printf("  Final balance:    $%.2f\n", ledger.Balance())
	fmt.Printf("  Total profit:     $%.2f\n\n", trader.Profit())

	if trader.Profit() > 0 {
		fmt.Println("SUCCESS: Ended with profit!")
	} else {
		fmt.Println("Note: Had to cut some losses.")
	}
	return nil
}
