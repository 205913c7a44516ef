package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"townclerk/pkg/db"
	"townclerk/pkg/mailbatch"
)

// mailWatchCmd represents the mail watch command
var mailWatchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and import mail batches dropped into it",
	Long: `Watch a directory and import YAML mail batches as they appear.

Batch files written or created in the watched directory are imported into
the register. Files that do not end in .yml or .yaml are ignored.

Example:
  clerkctl mail watch /var/spool/townclerk/mail`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		directory := args[0]

		if err := watchMailDirectory(directory); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch directory: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	mailCmd.AddCommand(mailWatchCmd)
}

func watchMailDirectory(directory string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(directory); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", directory, err)
	}

	fmt.Printf("Watching %s for mail batches\n", directory)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				ext := filepath.Ext(event.Name)
				if ext != ".yml" && ext != ".yaml" {
					continue
				}

				fmt.Printf("[%s] Batch detected, importing %s...\n", time.Now().Format(time.RFC3339), event.Name)

				batch, err := mailbatch.ParseFile(event.Name)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error parsing batch: %v\n", err)
					continue
				}

				result := importMailBatch(database, batch)
				fmt.Printf("Imported %d entr(ies), skipped %d\n", result.Created, result.Skipped)
				for _, msg := range result.Errors {
					fmt.Fprintf(os.Stderr, "  %s\n", msg)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
