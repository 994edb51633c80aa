package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("papertrader version %s\n", version)
		fmt.Println("A banking ledger and rule-based trading bot simulator")
		fmt.Println("https://github.com/rustyeddy/papertrader")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
