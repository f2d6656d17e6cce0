// Package journal records SPL-T moves as zstd-compressed JSON lines, one
// file per run, so a finished game can be replayed and verified later.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
)

// Ext is the journal file extension.
const Ext = ".jsonl.zst"

// Entry is one accepted move.
type Entry struct {
	Run    string `json:"run"`
	Game   string `json:"game"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Seq    int    `json:"seq"` // 1-based move number
	Index  int    `json:"index"`
	Delta  int    `json:"delta"`
	Score  int    `json:"score"`
	Digest uint64 `json:"digest"` // board digest after the move
}

// FileName returns the journal file name for a run.
func FileName(game, run string) string {
	return fmt.Sprintf("%s-%s%s", game, run, Ext)
}

// Writer appends entries to a single run's journal. The file is created on
// the first write. Safe for concurrent use.
type Writer struct {
	path   string
	run    string
	game   string
	width  int
	height int

	mu  sync.Mutex
	seq int
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewWriter prepares a journal for run under dir.
func NewWriter(dir, game, run string, width, height int) *Writer {
	return &Writer{
		path:   filepath.Join(dir, FileName(game, run)),
		run:    run,
		game:   game,
		width:  width,
		height: height,
	}
}

// Path returns the journal file path.
func (w *Writer) Path() string { return w.path }

// Record writes the entry for an accepted move.
func (w *Writer) Record(rep engine.MoveReport) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		if err := w.openLocked(); err != nil {
			return err
		}
	}

	w.seq++
	b, err := json.Marshal(Entry{
		Run:    w.run,
		Game:   w.game,
		Width:  w.width,
		Height: w.height,
		Seq:    w.seq,
		Index:  rep.Index,
		Delta:  rep.Delta,
		Score:  rep.Score,
		Digest: rep.Digest,
	})
	if err != nil {
		return fmt.Errorf("journal: encode entry: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	return nil
}

// Close flushes and closes the journal. Closing a writer that never
// recorded anything creates no file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.w != nil {
		err = w.w.Flush()
	}
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	w.w = nil
	if err != nil {
		return fmt.Errorf("journal: close %s: %w", w.path, err)
	}
	return nil
}

func (w *Writer) openLocked() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("journal: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("journal: cannot open %s: %w", w.path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("journal: cannot start encoder: %w", err)
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 32*1024)
	return nil
}

// Reader iterates the entries of a journal file.
type Reader struct {
	f   *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

// Open opens a journal file for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("journal: cannot start decoder: %w", err)
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 4*1024), 1024*1024)
	return &Reader{f: f, dec: dec, sc: sc}, nil
}

// Next returns the next entry, or io.EOF after the last one.
func (r *Reader) Next() (Entry, error) {
	for r.sc.Scan() {
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return Entry{}, fmt.Errorf("journal: bad entry: %w", err)
		}
		return e, nil
	}
	if err := r.sc.Err(); err != nil {
		return Entry{}, fmt.Errorf("journal: read: %w", err)
	}
	return Entry{}, io.EOF
}

// Close releases the file.
func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}

// ReadAll returns every entry of the journal at path.
func ReadAll(path string) ([]Entry, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []Entry
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}
