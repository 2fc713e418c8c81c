package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"journey-route-service/internal/domain"
)

// Dated entry filenames: 2024-05-12-lisbon.md or .mdx.
var entryFilePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)\.(md|mdx)$`)

// Loader reads journal entries from a flat content directory.
// It implements the EntryLoader port.
type Loader struct {
	Dir      string
	validate *validator.Validate
}

func NewLoader(dir string) *Loader {
	return &Loader{
		Dir:      dir,
		validate: validator.New(),
	}
}

// LoadEntries scans the content directory and returns all dated entries
// sorted ascending by date (filename order breaks date ties). Files whose
// names do not match the dated pattern are skipped silently; files that
// match but fail to parse abort the load.
func (l *Loader) LoadEntries(ctx context.Context) ([]domain.Entry, error) {
	dirEntries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("load entries: read content dir %q: %w", l.Dir, err)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if de.IsDir() {
			continue
		}

		m := entryFilePattern.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}

		path := filepath.Join(l.Dir, de.Name())
		entry, err := l.parseEntryFile(path, m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("load entries: %q: %w", de.Name(), err)
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

func (l *Loader) parseEntryFile(path, fileDate, slug string) (domain.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("read entry: %w", err)
	}

	fm, err := extractFrontmatter(data)
	if err != nil {
		return domain.Entry{}, err
	}

	// The frontmatter date, when present, overrides the filename date.
	dateStr := fileDate
	if fm.Date != "" {
		dateStr = fm.Date
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse entry date %q: %w", dateStr, err)
	}

	entry := domain.Entry{
		Date:  date,
		Slug:  slug,
		Title: fm.Title,
		Path:  path,
	}

	if fm.Location != nil {
		if err := l.validate.Struct(fm.Location); err != nil {
			return domain.Entry{}, fmt.Errorf("invalid location: %w", err)
		}

		coord := domain.Coordinates{Lat: fm.Location.Coordinates[0], Lon: fm.Location.Coordinates[1]}
		if err := coord.Validate(); err != nil {
			return domain.Entry{}, fmt.Errorf("invalid location %q: %w", fm.Location.Name, err)
		}

		entry.Location = &domain.Location{
			Name:        fm.Location.Name,
			Coordinates: coord,
		}
	}

	for i, seg := range fm.Routes {
		if err := l.validate.Struct(seg); err != nil {
			return domain.Entry{}, fmt.Errorf("invalid route segment #%d: %w", i+1, err)
		}

		mode, err := domain.ParseMode(seg.Mode)
		if err != nil {
			return domain.Entry{}, fmt.Errorf("route segment #%d: %w", i+1, err)
		}

		entry.Segments = append(entry.Segments, domain.SegmentSpec{
			From: seg.From,
			To:   seg.To,
			Mode: mode,
		})
	}

	return entry, nil
}
