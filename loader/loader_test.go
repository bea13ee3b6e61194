package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wordnet/loader"
	"github.com/katalvlaran/wordnet/snapshot"
	"github.com/katalvlaran/wordnet/taxonomy"
)

var testdata = loader.Source{
	Synsets:   "../testdata/synsets.txt",
	Hypernyms: "../testdata/hypernyms.txt",
}

// TestLoad builds the sample taxonomy without a cache.
func TestLoad(t *testing.T) {
	tx, err := loader.Load(context.Background(), testdata)
	require.NoError(t, err)
	assert.Equal(t, 21, tx.V())
	assert.Equal(t, 0, tx.Root())
	assert.Equal(t, 36, tx.NounCount())
}

// TestLoad_Cache misses, saves, then hits.
func TestLoad_Cache(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zap.DebugLevel)
	opts := []loader.Option{loader.WithCacheDir(dir), loader.WithLogger(zap.New(core))}

	first, err := loader.Load(context.Background(), testdata, opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("snapshot cache miss").Len())
	assert.Equal(t, 1, logs.FilterMessage("snapshot saved").Len())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	second, err := loader.Load(context.Background(), testdata, opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("snapshot cache hit").Len())
	assert.Equal(t, 2, logs.FilterMessage("taxonomy loaded").Len())
	assert.Equal(t, first.Stats(), second.Stats())
	a, err := first.Synset(19)
	require.NoError(t, err)
	b, err := second.Synset(19)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestLoad_CacheKeyedByContent ignores snapshots of other sources.
func TestLoad_CacheKeyedByContent(t *testing.T) {
	dir := t.TempDir()
	src := writeSources(t, "0,entity\n1,cat\n", "1,0\n")

	snap, err := loader.Read(context.Background(), src, loader.WithCacheDir(dir))
	require.NoError(t, err)
	assert.FileExists(t, loader.CachePath(dir, snap.Digest))

	require.NoError(t, os.WriteFile(src.Synsets, []byte("0,entity\n1,dog\n"), 0o644))
	tx, err := loader.Load(context.Background(), src, loader.WithCacheDir(dir))
	require.NoError(t, err)
	ok, err := tx.IsNoun("dog")
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// TestLoad_CorruptCache reparses an unreadable snapshot.
func TestLoad_CorruptCache(t *testing.T) {
	dir := t.TempDir()
	snap, err := loader.Read(context.Background(), testdata)
	require.NoError(t, err)
	path := loader.CachePath(dir, snap.Digest)
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0o644))

	core, logs := observer.New(zap.DebugLevel)
	tx, err := loader.Load(context.Background(), testdata,
		loader.WithCacheDir(dir), loader.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 21, tx.V())
	assert.Equal(t, 1, logs.FilterMessage("snapshot unreadable, reparsing").Len())

	// the bad entry was replaced
	fresh, err := snapshot.Open(path)
	require.NoError(t, err)
	assert.Equal(t, snap.Digest, fresh.Digest)
}

// TestLoad_CachedInvalidRecords still validates snapshot contents.
func TestLoad_CachedInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	src := writeSources(t, "0,entity\n1,cat\n", "1,0\n")
	raw := [2][]byte{}
	for i, p := range []string{src.Synsets, src.Hypernyms} {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		raw[i] = b
	}
	digest := loader.Digest(raw[0], raw[1])

	// a snapshot with two roots under the real digest
	bad := snapshot.New(digest,
		[]taxonomy.SynsetRecord{{ID: 0, Words: []string{"entity"}}, {ID: 1, Words: []string{"cat"}}},
		nil)
	require.NoError(t, snapshot.Save(loader.CachePath(dir, digest), bad))

	_, err := loader.Load(context.Background(), src, loader.WithCacheDir(dir))
	assert.ErrorIs(t, err, taxonomy.ErrMultipleRoots)
}

// TestLoad_Errors covers missing paths, missing files and bad records.
func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := loader.Load(ctx, loader.Source{Synsets: testdata.Synsets})
	assert.ErrorIs(t, err, loader.ErrNoSource)

	_, err = loader.Load(ctx, loader.Source{Synsets: "nope.txt", Hypernyms: testdata.Hypernyms})
	assert.ErrorIs(t, err, os.ErrNotExist)

	src := writeSources(t, "0,entity\nx,cat\n", "")
	_, err = loader.Load(ctx, src)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "synsets")

	src = writeSources(t, "0,entity\n1,cat\n", "1,0\n0,1\n")
	_, err = loader.Load(ctx, src)
	assert.ErrorIs(t, err, taxonomy.ErrInvariantViolation)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = loader.Load(canceled, testdata)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDigest is order and boundary sensitive.
func TestDigest(t *testing.T) {
	a := loader.Digest([]byte("ab"), []byte("c"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, loader.Digest([]byte("ab"), []byte("c")))
	assert.NotEqual(t, a, loader.Digest([]byte("a"), []byte("bc")))
	assert.NotEqual(t, a, loader.Digest([]byte("c"), []byte("ab")))
}

func writeSources(t *testing.T, synsets, hypernyms string) loader.Source {
	t.Helper()
	dir := t.TempDir()
	src := loader.Source{
		Synsets:   filepath.Join(dir, "synsets.txt"),
		Hypernyms: filepath.Join(dir, "hypernyms.txt"),
	}
	require.NoError(t, os.WriteFile(src.Synsets, []byte(synsets), 0o644))
	require.NoError(t, os.WriteFile(src.Hypernyms, []byte(hypernyms), 0o644))

	return src
}
