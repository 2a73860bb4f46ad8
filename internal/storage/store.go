package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/atomlab/internal/atom"
	"github.com/san-kum/atomlab/internal/logging"
)

const metadataFile = "metadata.json"

var ErrNotFound = errors.New("storage: export not found")

// Store keeps exported diagrams, one directory per export.
type Store struct {
	baseDir string
	log     logging.Logger
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, log: logging.NoOp{}, now: time.Now}
}

func (s *Store) WithLogger(l logging.Logger) *Store {
	s.log = l
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string      `json:"id"`
	Subject   string      `json:"subject"`
	Format    string      `json:"format"`
	Timestamp time.Time   `json:"timestamp"`
	Counts    atom.Counts `json:"counts"`
	File      string      `json:"file"`
	Bytes     int         `json:"bytes"`
}

// Save writes data as diagram.<format> under a fresh export directory and
// returns its id.
func (s *Store) Save(subject, format string, counts atom.Counts, data []byte) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("%s_%s_%d", slug(subject), format, ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	file := "diagram." + format
	meta := Metadata{
		ID:        id,
		Subject:   subject,
		Format:    format,
		Timestamp: ts,
		Counts:    counts,
		File:      file,
		Bytes:     len(data),
	}

	if err := writeExport(dir, file, data, meta); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("storage: save %s: %w", id, err)
	}

	s.log.Debugf("saved export %s (%d bytes)", id, len(data))
	return id, nil
}

func writeExport(dir, file string, data []byte, meta Metadata) error {
	if err := os.WriteFile(filepath.Join(dir, file), data, 0644); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	return metaFile.Close()
}

// List returns every readable export, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	exports := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.Warnf("skipping %s: %v", entry.Name(), err)
			continue
		}

		exports = append(exports, *meta)
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].Timestamp.Before(exports[j].Timestamp)
	})
	return exports, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", id, err)
	}

	return &meta, nil
}

// Path is the location of an export's diagram file.
func (s *Store) Path(meta *Metadata) string {
	return filepath.Join(s.baseDir, meta.ID, meta.File)
}

// ExportJSON writes exports as an indented JSON array.
func ExportJSON(w io.Writer, exports []Metadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exports)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "atom"
	}
	return b.String()
}
