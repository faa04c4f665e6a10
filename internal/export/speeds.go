// Package export writes periodic speed snapshots for external
// consumers (e.g. a live histogram plotter).
//
// The format is one decimal speed per line; each export fully replaces
// the previous file, so the consumer always sees exactly one snapshot.
package export

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"time"
)

// SpeedSource yields the current ordered speed snapshot. Satisfied by
// the engine's World.
type SpeedSource interface {
	Speeds() []float64
}

// SpeedWriter periodically rewrites a speeds file from a source.
type SpeedWriter struct {
	path     string
	interval time.Duration
	source   SpeedSource
}

// NewSpeedWriter creates a writer exporting src to path every interval.
func NewSpeedWriter(path string, interval time.Duration, src SpeedSource) *SpeedWriter {
	return &SpeedWriter{path: path, interval: interval, source: src}
}

// WriteOnce takes one snapshot and rewrites the file. The snapshot is
// taken before the file is touched, so no lock is held during I/O.
func (w *SpeedWriter) WriteOnce() error {
	speeds := w.source.Speeds()
	return WriteSpeeds(w.path, speeds)
}

// Run exports on the configured cadence until ctx is cancelled. Export
// is best-effort: a failed write is dropped and retried next cycle, the
// same way a skipped frame would be.
func (w *SpeedWriter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = w.WriteOnce()
		}
	}
}

// WriteSpeeds rewrites path with one speed per line.
func WriteSpeeds(path string, speeds []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	for _, v := range speeds {
		bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
