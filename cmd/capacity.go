package cmd

import (
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Battery bank capacity calculation from itemized DC loads",
	Long: `Calculate the required battery bank capacity from itemized DC loads
based on DL/T 5044-2014 provisions.

Subcommands:
  calc  - Aggregate loads and compute the staged design capacity

Capacities are computed for the 1 min, 0.5 h, 1 h, 2 h and 4 h discharge
stages, the 5 s random load is overlaid on each, and the governing value
is rounded up to a whole Ah.`,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
