package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"townclerk/pkg/config"
	"townclerk/pkg/db"
	"townclerk/pkg/mailbatch"
	"townclerk/pkg/server/store"
	storegorm "townclerk/pkg/server/store/gorm"
)

// mailImportCmd represents the mail import command
var mailImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a YAML batch of incoming mail",
	Long: `Import a YAML batch file of incoming mail into the register.

Each entry needs a reference and a subject; contact, service, status and
received timestamp are optional.

Example:
  clerkctl mail import batches/2026-08-29.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		result, err := importMailFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to import mail: %v\n", err)
			os.Exit(1)
		}

		// Output result as JSON
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))

		if result.Skipped > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	mailCmd.AddCommand(mailImportCmd)
}

func importMailFile(filename string) (*mailbatch.LoadResult, error) {
	batch, err := mailbatch.ParseFile(filename)
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	result := importMailBatch(database, batch)

	fmt.Printf("Imported %d mail entr(ies) from %s\n", result.Created, filename)

	return &result, nil
}

func importMailBatch(database *gorm.DB, batch *mailbatch.Batch) mailbatch.LoadResult {
	cfg := config.Get()
	limits := store.Limits{Default: cfg.APIListLimitDefault, Max: cfg.APIListLimitMax}
	mail := storegorm.NewMailStore(database, limits)

	return mailbatch.Import(mail, batch)
}
