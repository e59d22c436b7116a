package cmd

import (
	"fmt"
	"os"

	"github.com/luminghao/godcps/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "godcps",
	Short: "DC Power Supply System Sizing Tool",
	Long: `godcps - Go DC Power System Sizer

A CLI tool for sizing station DC power supply systems
based on DL/T 5044-2014 (Technical code for designing DC power supply
systems of electric power projects).

This tool helps electrical engineers perform:
  - DC load statistics across discharge stages
  - Battery bank capacity calculation (staged discharge method)
  - Battery cell count calculation
  - High-frequency rectifier module count selection

All calculations use the 1.85 V/cell discharge coefficient table.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   godcps v%-48s║\n", version.Version)
		fmt.Println("  ║   Go DC Power System Sizer                                ║")
		fmt.Println("  ║   Lu Minghao ©  2025                                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing station DC power supply systems")
		fmt.Println("  based on DL/T 5044-2014.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • DC load statistics and staged battery capacity calculation")
		fmt.Println("    • Battery cell count calculation")
		fmt.Println("    • High-frequency rectifier module count selection")
		fmt.Println("    • HTTP API with per-session load collections")
		fmt.Println()
		fmt.Println("  Use 'godcps --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
