package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/luminghao/godcps/internal/battery"
	"github.com/luminghao/godcps/internal/dlt"
	"github.com/spf13/cobra"
)

var (
	// Battery inputs
	batteryNominal float64
	batteryFloat   float64
)

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Calculate the number of battery cells",
	Long: `Calculate the number of battery cells from the DC bus nominal voltage
and the per-cell float charging voltage:

  n = ceil((Un / Uf) x 1.05)

The 1.05 margin is applied before rounding.

Examples:
  # 220 V bus with 2.23 V float voltage
  godcps battery --nominal 220 --float 2.23

  # Using short flags
  godcps battery -n 220 -f 2.23`,
	RunE: runBattery,
}

func init() {
	rootCmd.AddCommand(batteryCmd)

	batteryCmd.Flags().Float64VarP(&batteryNominal, "nominal", "n", dlt.NominalVoltage, "DC system nominal voltage Un (V)")
	batteryCmd.Flags().Float64VarP(&batteryFloat, "float", "f", dlt.DefaultFloatVoltage, "Per-cell float charging voltage Uf (V)")
}

func runBattery(cmd *cobra.Command, args []string) error {
	result, err := battery.Count(batteryNominal, batteryFloat)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATTERY CELL COUNT - DL/T 5044-2014")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Voltage (Un):\t%.2f V\n", result.NominalVoltage)
	fmt.Fprintf(w, "  Float Voltage (Uf):\t%.2f V\n", result.FloatVoltage)
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
	fmt.Printf("  ║  CELL COUNT n = %d                      \n", result.Count)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	return nil
}
