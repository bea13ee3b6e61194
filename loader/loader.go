// Package loader turns synset and hypernym files into a built taxonomy.
//
// Both files are read and parsed concurrently. With WithCacheDir, the
// sha256 digest of the two files keys a msgpack snapshot of the parsed
// records: a hit skips text parsing, a miss parses and saves a fresh
// snapshot. Snapshots never bypass validation; taxonomy.Build always runs.
package loader

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordnet/records"
	"github.com/katalvlaran/wordnet/snapshot"
	"github.com/katalvlaran/wordnet/taxonomy"
)

// ErrNoSource is returned when a Source lacks a file path.
var ErrNoSource = errors.New("loader: missing source path")

// Source names the two input files.
type Source struct {
	Synsets   string
	Hypernyms string
}

// Option configures Load and Read.
type Option func(*options)

type options struct {
	cacheDir string
	logger   *zap.Logger
}

// WithCacheDir enables the snapshot cache in dir. An empty dir disables it.
func WithCacheDir(dir string) Option {
	return func(o *options) { o.cacheDir = dir }
}

// WithLogger sets the logger for stage output. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads src and builds a validated taxonomy.
func Load(ctx context.Context, src Source, opts ...Option) (*taxonomy.Taxonomy, error) {
	o := apply(opts)
	snap, err := read(ctx, src, o)
	if err != nil {
		return nil, err
	}
	tx, err := taxonomy.Build(snap.Synsets, snap.Hypernyms, taxonomy.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	o.logger.Info("taxonomy loaded",
		zap.Int("synsets", tx.V()),
		zap.Int("nouns", tx.NounCount()),
		zap.Int("root", tx.Root()),
	)

	return tx, nil
}

// Read returns the parsed records of src as a snapshot, consulting and
// filling the cache when one is configured. The records are not validated.
func Read(ctx context.Context, src Source, opts ...Option) (*snapshot.Snapshot, error) {
	return read(ctx, src, apply(opts))
}

// Digest returns the hex sha256 over both sources, each length-prefixed.
func Digest(synsets, hypernyms []byte) string {
	h := sha256.New()
	var n [8]byte
	for _, b := range [][]byte{synsets, hypernyms} {
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// CachePath returns the snapshot file used for digest in dir.
func CachePath(dir, digest string) string {
	return filepath.Join(dir, digest+".mp")
}

func apply(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func read(ctx context.Context, src Source, o options) (*snapshot.Snapshot, error) {
	if src.Synsets == "" || src.Hypernyms == "" {
		return nil, ErrNoSource
	}

	var synRaw, hypRaw []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		synRaw, err = readFile(gctx, src.Synsets)
		return err
	})
	g.Go(func() (err error) {
		hypRaw, err = readFile(gctx, src.Hypernyms)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	digest := Digest(synRaw, hypRaw)
	log := o.logger.With(zap.String("digest", digest[:12]))
	if o.cacheDir != "" {
		if snap := lookup(o.cacheDir, digest, log); snap != nil {
			return snap, nil
		}
	}

	snap, err := parse(ctx, synRaw, hypRaw, digest)
	if err != nil {
		return nil, err
	}
	log.Debug("sources parsed",
		zap.Int("synsets", len(snap.Synsets)),
		zap.Int("hypernyms", len(snap.Hypernyms)),
	)
	if o.cacheDir != "" {
		path := CachePath(o.cacheDir, digest)
		if err := snapshot.Save(path, snap); err != nil {
			log.Warn("snapshot save failed", zap.String("path", path), zap.Error(err))
		} else {
			log.Debug("snapshot saved", zap.String("path", path))
		}
	}

	return snap, nil
}

// lookup returns a cached snapshot for digest, or nil on a miss. Unreadable
// or stale entries count as misses.
func lookup(dir, digest string, log *zap.Logger) *snapshot.Snapshot {
	path := CachePath(dir, digest)
	snap, err := snapshot.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug("snapshot cache miss", zap.String("path", path))
		return nil
	case err != nil:
		log.Warn("snapshot unreadable, reparsing", zap.String("path", path), zap.Error(err))
		return nil
	case snap.Digest != digest:
		log.Warn("snapshot digest mismatch, reparsing", zap.String("path", path))
		return nil
	}
	log.Debug("snapshot cache hit", zap.String("path", path))

	return snap
}

func parse(ctx context.Context, synRaw, hypRaw []byte, digest string) (*snapshot.Snapshot, error) {
	var (
		syn []taxonomy.SynsetRecord
		hyp []taxonomy.HypernymRecord
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		syn, err = records.ReadSynsets(bytes.NewReader(synRaw))
		if err != nil {
			return fmt.Errorf("loader: synsets: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		hyp, err = records.ReadHypernyms(bytes.NewReader(hypRaw))
		if err != nil {
			return fmt.Errorf("loader: hypernyms: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot.New(digest, syn, hyp), nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	return b, nil
}
