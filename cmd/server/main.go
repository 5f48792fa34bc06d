// Package main is the entry point for the fishing API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fishing-api",
	Short: "Fishing API HTTP Server",
	Long:  `Fishing API serves the reward resolution engine: catches, luck, quests, travel, and the shop over HTTP/JSON.`,
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
