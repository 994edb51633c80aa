package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrader",
	Short: "A banking ledger and rule-based trading bot over a synthetic market",
	Long: `Papertrader simulates a single-session banking ledger coupled to an
automated trading bot stepping through a synthetic, day-by-day stock market.

It provides tools for:
  - Running full simulations from a config file
  - Momentum and dip-buying strategies with automatic switching
  - Scheduled deposits landing on future simulation days
  - Trade journals as CSV files or a SQLite database

Complete documentation is available at https://github.com/rustyeddy/papertrader`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
