package streamfft

import (
	"errors"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	eng := NewEngine()
	eng.SetMetrics(metrics)

	// One good frame.
	var sink SliceSink
	if err := eng.Transform(NewSliceSource(toneWords(10)), &sink); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	// One framing violation.
	bad := toneWords(10)
	bad[5].Last = true

	if err := eng.Transform(NewSliceSource(bad), &sink); !errors.Is(err, ErrFraming) {
		t.Fatalf("Transform = %v, want ErrFraming", err)
	}

	// One transport failure (mid-frame EOF).
	if err := eng.Transform(NewSliceSource(toneWords(10)[:42]), &sink); !errors.Is(err, ErrTransport) {
		t.Fatalf("Transform = %v, want ErrTransport", err)
	}

	// Clean EOF counts as neither.
	if err := eng.Transform(NewSliceSource(nil), &sink); err != io.EOF {
		t.Fatalf("Transform = %v, want io.EOF", err)
	}

	if got := testutil.ToFloat64(metrics.framesTotal); got != 1 {
		t.Errorf("frames_total = %v, want 1", got)
	}

	if got := testutil.ToFloat64(metrics.framingErrors); got != 1 {
		t.Errorf("framing_errors_total = %v, want 1", got)
	}

	if got := testutil.ToFloat64(metrics.transportErrors); got != 1 {
		t.Errorf("transport_errors_total = %v, want 1", got)
	}

	if got := testutil.CollectAndCount(metrics.transformSeconds); got != 1 {
		t.Errorf("transform_seconds collected %d series, want 1", got)
	}
}
