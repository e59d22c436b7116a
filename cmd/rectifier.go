package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/luminghao/godcps/internal/dlt"
	"github.com/luminghao/godcps/internal/rectifier"
	"github.com/spf13/cobra"
)

var (
	// Rectifier inputs
	rectBatteryAh float64
	rectFrequentA float64
	rectModuleA   float64
)

var rectifierCmd = &cobra.Command{
	Use:   "rectifier",
	Short: "Calculate the number of high-frequency rectifier modules",
	Long: `Calculate the number of high-frequency switch-mode rectifier modules:

  Ijs = 1.25 x (C10 / 10) + Ijc
  n1  = ceil(Ijs / Imo)
  n2  = 1 for n1 <= 6, otherwise 2
  n   = n1 + n2

where C10 is the battery capacity (Ah), Ijc the continuous load current
and Imo the rated current of a single module.

Examples:
  # 400 Ah battery, 27.27 A continuous load, 20 A modules
  godcps rectifier --battery 400 --frequent 27.27 --module 20

  # Using short flags
  godcps rectifier -b 400 -i 27.27 -m 20`,
	RunE: runRectifier,
}

func init() {
	rootCmd.AddCommand(rectifierCmd)

	rectifierCmd.Flags().Float64VarP(&rectBatteryAh, "battery", "b", dlt.DefaultBatteryCapacity, "Battery capacity C10 (Ah)")
	rectifierCmd.Flags().Float64VarP(&rectFrequentA, "frequent", "i", dlt.DefaultFrequentCurrent, "Continuous load current Ijc (A)")
	rectifierCmd.Flags().Float64VarP(&rectModuleA, "module", "m", dlt.DefaultModuleCurrent, "Single module rated current Imo (A)")
}

func runRectifier(cmd *cobra.Command, args []string) error {
	result, err := rectifier.Modules(rectBatteryAh, rectFrequentA, rectModuleA)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RECTIFIER MODULE COUNT - DL/T 5044-2014")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Battery Capacity (C10):\t%.2f Ah\n", rectBatteryAh)
	fmt.Fprintf(w, "  Continuous Current (Ijc):\t%.2f A\n", rectFrequentA)
	fmt.Fprintf(w, "  Module Rated Current (Imo):\t%.2f A\n", rectModuleA)
	w.Flush()
	fmt.Println()

	fmt.Println("DERIVATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, step := range result.Trace {
		fmt.Fprintf(w, "  %s:\t%s\n", step.Label, step.Value)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  MODULE COUNT n = %d  (n1 = %d, n2 = %d)  \n", result.Total, result.N1, result.N2)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	return nil
}
