package main

import (
	"fmt"
	"strings"

	syspower "github.com/rahel-ahmed/SCP-firmware"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of syspower",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("syspower version %s\n", strings.TrimSpace(syspower.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
