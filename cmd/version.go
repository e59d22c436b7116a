package cmd

import (
	"fmt"

	"github.com/luminghao/godcps/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of godcps",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("godcps v%s\n", version.Version)
		fmt.Println("DC Power Supply System Sizing Tool")
		fmt.Println("Based on DL/T 5044-2014")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
