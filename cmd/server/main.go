// Package main is the entry point for the OC arena API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oc-api",
	Short: "OC Arena API Server",
	Long:  `OC Arena provides a JSON API for original character battles: create a character, challenge others, and absorb the powers of the fallen.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
