// Package snapshot stores parsed taxonomy records in msgpack form.
//
// A snapshot holds records, never a built graph: taxonomy.Build still runs
// every validation when a snapshot is loaded. Digest identifies the text
// sources the records were parsed from, so a cache can tell stale
// snapshots apart.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/wordnet/taxonomy"
)

// SchemaVersion is the layout written by Encode. Bump it whenever
// Snapshot or the record types change shape.
const SchemaVersion uint16 = 1

var (
	// ErrSchemaMismatch is returned when decoding a snapshot written with
	// another SchemaVersion.
	ErrSchemaMismatch = errors.New("snapshot: schema mismatch")

	// ErrNilSnapshot is returned when encoding a nil snapshot.
	ErrNilSnapshot = errors.New("snapshot: nil snapshot")
)

// Snapshot is the persisted form of one synset/hypernym source pair.
type Snapshot struct {
	Schema    uint16                    `msgpack:"schema"`
	Digest    string                    `msgpack:"digest"`
	Synsets   []taxonomy.SynsetRecord   `msgpack:"synsets"`
	Hypernyms []taxonomy.HypernymRecord `msgpack:"hypernyms"`
}

// New returns a snapshot of the current schema.
func New(digest string, synsets []taxonomy.SynsetRecord, hypernyms []taxonomy.HypernymRecord) *Snapshot {
	return &Snapshot{
		Schema:    SchemaVersion,
		Digest:    digest,
		Synsets:   synsets,
		Hypernyms: hypernyms,
	}
}

// Encode writes s to w.
func Encode(w io.Writer, s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return nil
}

// Decode reads one snapshot from r and checks its schema.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if s.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, s.Schema, SchemaVersion)
	}

	return &s, nil
}

// Save writes s to path through a temp file in the same directory and an
// atomic rename. Missing parent directories are created.
func Save(path string, s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	f, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	tmp := f.Name()
	done := false
	defer func() {
		if !done {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := Encode(f, s); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		done = true
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	done = true

	return nil
}

// Open reads the snapshot stored at path. A missing file is reported with
// an error satisfying errors.Is(err, fs.ErrNotExist).
func Open(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
