package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// mailCmd represents the mail command
var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Manage the incoming mail register",
	Long:  `Manage the incoming mail register.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'mail' requires a subcommand (import, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(mailCmd)
}
