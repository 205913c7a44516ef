package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clerkctl",
	Short: "Manage the townclerk correspondence server",
	Long:  `clerkctl runs and administers the townclerk municipal correspondence server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
