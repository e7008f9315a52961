// Package bench measures how long parsing takes.
package bench

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/abdul-hamid-achik/indental/packages/core/indental"
)

const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Recorder collects parse latencies. It is safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	// Latency histogram (in microseconds for precision)
	histogram *hdrhistogram.Histogram
}

func NewRecorder() *Recorder {
	return &Recorder{
		// Histogram: 1us to 60s range, 3 significant digits
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
	}
}

// Record adds one measurement, clamped to the histogram range.
func (r *Recorder) Record(d time.Duration) {
	us := d.Microseconds()
	if us < minLatencyUs {
		us = minLatencyUs
	}
	if us > maxLatencyUs {
		us = maxLatencyUs
	}

	r.mu.Lock()
	_ = r.histogram.RecordValue(us)
	r.mu.Unlock()
}

// Summary holds latency statistics for a run.
type Summary struct {
	Count int64         `json:"count"`
	Min   time.Duration `json:"min"`
	Mean  time.Duration `json:"mean"`
	P50   time.Duration `json:"p50"`
	P95   time.Duration `json:"p95"`
	P99   time.Duration `json:"p99"`
	Max   time.Duration `json:"max"`
	Total time.Duration `json:"total"`
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.histogram
	return Summary{
		Count: h.TotalCount(),
		Min:   micros(h.Min()),
		Mean:  time.Duration(h.Mean() * float64(time.Microsecond)),
		P50:   micros(h.ValueAtQuantile(50)),
		P95:   micros(h.ValueAtQuantile(95)),
		P99:   micros(h.ValueAtQuantile(99)),
		Max:   micros(h.Max()),
	}
}

func micros(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}

// Options configures Run.
type Options struct {
	Iterations int
	Workers    int
	Parser     []indental.Option
}

// Run parses input Iterations times across Workers goroutines and returns
// the latency summary. When ctx is cancelled Run stops early and returns
// the summary of the parses that finished along with ctx's error.
func Run(ctx context.Context, input string, opts Options) (Summary, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	parser := indental.NewParser(opts.Parser...)
	recorder := NewRecorder()

	var remaining atomic.Int64
	remaining.Store(int64(opts.Iterations))

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for remaining.Add(-1) >= 0 {
				if ctx.Err() != nil {
					return
				}
				began := time.Now()
				_ = parser.Parse(input)
				recorder.Record(time.Since(began))
			}
		}()
	}
	wg.Wait()

	summary := recorder.Summary()
	summary.Total = time.Since(start)
	return summary, ctx.Err()
}
