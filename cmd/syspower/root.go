package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "syspower",
	Short: "syspower is a system-level power-state controller",
	Long: `syspower owns the canonical power state of a System-on-Chip, driving
transitions across the primary rails (SYS0, SYS1) and auxiliary power-gated
units. This CLI runs the controller against simulated rails for bring-up and
integration testing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("topology", "t", "topology.yaml", "Path to the topology file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
