package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"townclerk/pkg/config"
	"townclerk/pkg/db"
	"townclerk/pkg/server/store"
	storegorm "townclerk/pkg/server/store/gorm"
)

// adminResetPasswordCmd represents the admin reset-password command
var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password USERNAME",
	Short: "Reset an admin account password",
	Long: `Reset the password of an admin account.

When no --password is given a random one is generated and printed once.

Example:
  clerkctl admin reset-password clerk`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		generated := false
		if password == "" {
			var err error
			password, err = randomPassword()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed to generate password:", err)
				os.Exit(1)
			}
			generated = true
		}

		gdb, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		cfg := config.Get()
		admins := storegorm.NewAdminsStore(gdb, store.Limits{Default: cfg.APIListLimitDefault, Max: cfg.APIListLimitMax})

		if err := admins.SetAdminPassword(username, password); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to reset password:", err)
			os.Exit(1)
		}

		fmt.Printf("Password reset for %s\n", username)
		if generated {
			fmt.Printf("Generated password: %s\n", password)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminResetPasswordCmd)

	adminResetPasswordCmd.Flags().String("password", "", "new password (generated when omitted)")
}
