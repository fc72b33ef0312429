// Package persist reads and writes the saved-hours file. The format is a
// YAML sequence of records in store insertion order; unset hours round-trip
// as null, distinct from 0.
package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/store"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of a single activity. Internal record IDs are
// deliberately not persisted; they are regenerated at load.
type record struct {
	Name        string   `yaml:"name"`
	HoursPerDay *float64 `yaml:"hoursPerDay"`
	DaysPerWeek *float64 `yaml:"daysPerWeek"`
	Parent      string   `yaml:"parent"`
}

// File is the persistence adapter for a single saved-hours file.
type File struct {
	Path string
}

// NewFile creates a File adapter for the given path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads the file into a fresh Store. A missing file is not an error:
// it yields an empty store, matching first-run behavior.
func (f *File) Load() (*store.Store, error) {
	s := store.New()

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading saved hours file: %w", err)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing saved hours file: %w", err)
	}

	for _, r := range records {
		s.Put(&domain.Activity{
			ID:          uuid.New().String(),
			Name:        r.Name,
			HoursPerDay: r.HoursPerDay,
			DaysPerWeek: r.DaysPerWeek,
			Parent:      r.Parent,
		})
	}
	return s, nil
}

// Save serializes the store to the file, overwriting any previous contents.
// The write goes through a temp file in the same directory followed by a
// rename, so a failed save never truncates the existing file.
func (f *File) Save(s *store.Store) error {
	records := make([]record, 0, s.Len())
	for _, name := range s.Names() {
		a, err := s.Get(name)
		if err != nil {
			return fmt.Errorf("saving hours: %w", err)
		}
		records = append(records, record{
			Name:        a.Name,
			HoursPerDay: a.HoursPerDay,
			DaysPerWeek: a.DaysPerWeek,
			Parent:      a.Parent,
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding saved hours: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".hours-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing saved hours: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing saved hours file: %w", err)
	}
	return nil
}
