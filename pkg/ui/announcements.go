package ui

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Announcement is a dashboard notice rendered from a Markdown file.
type Announcement struct {
	// Name is the file name without extension, used as the title when
	// the file has no leading heading.
	Name string

	// Body is the rendered HTML.
	Body template.HTML
}

// LoadAnnouncements renders every .md file in dir, sorted by file name
// so operators can prefix names with dates to control order. A missing
// or empty dir yields no announcements and no error.
func LoadAnnouncements(dir string) ([]Announcement, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	md := goldmark.New()
	var announcements []Announcement
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		source, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := md.Convert(source, &buf); err != nil {
			return nil, err
		}

		announcements = append(announcements, Announcement{
			Name: strings.TrimSuffix(entry.Name(), ".md"),
			Body: template.HTML(buf.String()),
		})
	}

	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].Name < announcements[j].Name
	})
	return announcements, nil
}
