package netstat

import (
	"context"
	"testing"
)

func TestSource_Read(t *testing.T) {
	src := New()

	sample, err := src.Read(context.Background())
	if err != nil {
		t.Skipf("OS counters unavailable in this environment: %v", err)
	}

	if sample.IsZero() {
		t.Error("Expected sample to carry a read timestamp")
	}
}
