package journal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "splt-abc.jsonl.zst", FileName("splt", "abc"))
}

func TestWriter_RecordAndReadAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w := NewWriter(dir, "splt", "run-1", 4, 8)

	b := engine.NewBoard(4, 8)
	var reports []engine.MoveReport
	for _, idx := range []int{0, 0, 1} {
		rep, ok := b.Apply(idx)
		require.True(t, ok)
		require.NoError(t, w.Record(rep))
		reports = append(reports, rep)
	}
	require.NoError(t, w.Close())

	entries, err := ReadAll(w.Path())
	require.NoError(t, err)
	require.Len(t, entries, len(reports))

	for i, e := range entries {
		assert.Equal(t, "run-1", e.Run)
		assert.Equal(t, "splt", e.Game)
		assert.Equal(t, 4, e.Width)
		assert.Equal(t, 8, e.Height)
		assert.Equal(t, i+1, e.Seq)
		assert.Equal(t, reports[i].Index, e.Index)
		assert.Equal(t, reports[i].Delta, e.Delta)
		assert.Equal(t, reports[i].Score, e.Score)
		assert.Equal(t, reports[i].Digest, e.Digest)
	}
	assert.Equal(t, b.Digest(), entries[len(entries)-1].Digest)
}

func TestWriter_CloseWithoutRecords(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "splt", "empty", 2, 2)
	require.NoError(t, w.Close())

	_, err := os.Stat(w.Path())
	assert.True(t, os.IsNotExist(err), "no file should be created")
}

func TestWriter_ConcurrentRecords(t *testing.T) {
	w := NewWriter(t.TempDir(), "splt", "busy", 8, 16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, w.Record(engine.MoveReport{Index: i, Delta: 1, Score: i}))
		}(i)
	}
	wg.Wait()
	require.NoError(t, w.Close())

	entries, err := ReadAll(w.Path())
	require.NoError(t, err)
	require.Len(t, entries, 8)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Seq, "sequence numbers stay ordered")
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.jsonl.zst"))
	assert.Error(t, err)

	// Plain text is not a zstd stream
	path := filepath.Join(t.TempDir(), "bad.jsonl.zst")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1}\n"), 0o644))
	_, err = ReadAll(path)
	assert.Error(t, err)
}
