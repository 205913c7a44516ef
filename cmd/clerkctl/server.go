package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"townclerk/pkg/config"
	"townclerk/pkg/db"
	"townclerk/pkg/server"
	"townclerk/pkg/server/endpoints"
	"townclerk/pkg/server/store"
	storegorm "townclerk/pkg/server/store/gorm"
	"townclerk/pkg/session"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the townclerk application server",
	Long: `Run the townclerk application server

To run the server requires the environment variables SESSION_SECRET and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		secret, err := session.SecretFromEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gdb, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		sessions, err := session.NewManager(secret, cfg.SessionTTL())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create session manager:", err)
			os.Exit(1)
		}

		limits := store.Limits{Default: cfg.APIListLimitDefault, Max: cfg.APIListLimitMax}
		stores := server.Stores{
			Admins:      storegorm.NewAdminsStore(gdb, limits),
			Users:       storegorm.NewUsersStore(gdb, limits),
			Services:    storegorm.NewServicesStore(gdb, limits),
			ContactsIn:  storegorm.NewContactsInStore(gdb, limits),
			ContactsOut: storegorm.NewContactsOutStore(gdb, limits),
			Council:     storegorm.NewCouncilStore(gdb, limits),
			Mail:        storegorm.NewMailStore(gdb, limits),
			Health:      storegorm.NewHealthStore(gdb),
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(stores, sessions, gdb, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
