// Package mailbatch parses YAML batch files of incoming mail and loads
// them into the mail register. Batches are produced by the front desk
// scanning workflow and dropped into a directory the server watches.
package mailbatch

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Entry is a single piece of mail in a batch file.
type Entry struct {
	Reference  string     `yaml:"reference"`
	Subject    string     `yaml:"subject"`
	ContactID  *int64     `yaml:"contact_id"`
	ServiceID  *int64     `yaml:"service_id"`
	Status     string     `yaml:"status"`
	ReceivedAt *time.Time `yaml:"received_at"`
}

// Batch is a parsed batch file.
type Batch struct {
	Mail []Entry `yaml:"mail"`
}

// LoadResult summarizes an import.
type LoadResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Parse reads and validates a batch document.
func Parse(r io.Reader) (*Batch, error) {
	var batch Batch
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}

	if len(batch.Mail) == 0 {
		return nil, fmt.Errorf("batch contains no mail entries")
	}

	for i, entry := range batch.Mail {
		if entry.Reference == "" {
			return nil, fmt.Errorf("entry %d: reference is required", i+1)
		}
		if entry.Subject == "" {
			return nil, fmt.Errorf("entry %d: subject is required", i+1)
		}
		if entry.Status != "" {
			if _, err := model.MailStatusString(entry.Status); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
		}
	}

	return &batch, nil
}

// ParseFile parses a batch file from disk.
func ParseFile(path string) (*Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

// Import registers every entry of a batch. Entries that fail are
// reported in the result; the rest of the batch still loads.
func Import(mail store.MailStore, batch *Batch) LoadResult {
	result := LoadResult{}

	for i, entry := range batch.Mail {
		input := store.MailInput{
			Reference:  entry.Reference,
			Subject:    entry.Subject,
			ContactID:  entry.ContactID,
			ServiceID:  entry.ServiceID,
			ReceivedAt: entry.ReceivedAt,
		}
		if entry.Status != "" {
			status, _ := model.MailStatusString(entry.Status)
			input.Status = &status
		}

		if _, err := mail.CreateMail(input); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d (%s): %v", i+1, entry.Reference, err))
			continue
		}
		result.Created++
	}

	return result
}
