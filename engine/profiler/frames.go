package profiler

import (
	"log/slog"
	"time"
)

// Frames accumulates render loop statistics. It is owned by the render
// thread and needs no locking.
type Frames struct {
	Rendered uint64
	Skipped  uint64
	Failed   uint64
	Resizes  uint64
	Last     time.Duration
	Total    time.Duration
	Slowest  time.Duration
}

// Begin starts timing a frame; the returned func records it.
func (f *Frames) Begin(now func() time.Time) func(err error) {
	start := now()
	return func(err error) {
		if err != nil {
			f.Failed++
			return
		}
		d := now().Sub(start)
		f.Rendered++
		f.Last = d
		f.Total += d
		f.Slowest = max(f.Slowest, d)
	}
}

func (f *Frames) Skip() { f.Skipped++ }

func (f *Frames) Resize() { f.Resizes++ }

// Average returns the mean duration of rendered frames.
func (f *Frames) Average() time.Duration {
	if f.Rendered == 0 {
		return 0
	}
	return f.Total / time.Duration(f.Rendered)
}

// LogValue implements slog.LogValuer.
func (f Frames) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("rendered", f.Rendered),
		slog.Uint64("skipped", f.Skipped),
		slog.Uint64("failed", f.Failed),
		slog.Uint64("resizes", f.Resizes),
		slog.Duration("avg", f.Average()),
		slog.Duration("slowest", f.Slowest),
	)
}
