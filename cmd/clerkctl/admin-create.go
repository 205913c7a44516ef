package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"townclerk/pkg/config"
	"townclerk/pkg/db"
	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
	storegorm "townclerk/pkg/server/store/gorm"
)

// adminCreateCmd represents the admin create command
var adminCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Create an admin account",
	Long: `Create an admin account.

When no --password is given a random one is generated and printed once.

Example:
  clerkctl admin create clerk --email clerk@town.example --role admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]

		email, _ := cmd.Flags().GetString("email")
		displayName, _ := cmd.Flags().GetString("display-name")
		roleName, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		role, err := model.RoleString(roleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unknown role %q (want one of %v)\n", roleName, model.RoleStrings())
			os.Exit(1)
		}

		generated := false
		if password == "" {
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

		admin, err := admins.CreateAdmin(store.AdminInput{
			Username:    username,
			Email:       email,
			DisplayName: displayName,
			Role:        role,
			Password:    password,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create admin:", err)
			os.Exit(1)
		}

		fmt.Printf("Created admin %s (id %d, role %s)\n", admin.Username, admin.ID, admin.Role)
		if generated {
			fmt.Printf("Generated password: %s\n", password)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)

	adminCreateCmd.Flags().String("email", "", "email address")
	adminCreateCmd.Flags().String("display-name", "", "name shown in the interface")
	adminCreateCmd.Flags().String("role", "agent", "account role (agent or admin)")
	adminCreateCmd.Flags().String("password", "", "initial password (generated when omitted)")
}

func randomPassword() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
