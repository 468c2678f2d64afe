package model

import (
	"testing"
	"time"
)

func TestCounterSample_IsZero(t *testing.T) {
	var empty CounterSample
	if !empty.IsZero() {
		t.Error("Zero-value sample should report IsZero")
	}

	taken := CounterSample{Sent: 10, Recv: 20, At: time.Now()}
	if taken.IsZero() {
		t.Error("Sample with a timestamp should not report IsZero")
	}
}

func TestRateReading_IsIdle(t *testing.T) {
	tests := []struct {
		reading  RateReading
		expected bool
	}{
		{RateReading{}, true},
		{RateReading{UploadBps: 1}, false},
		{RateReading{DownloadBps: 1}, false},
		{RateReading{UploadBps: 512, DownloadBps: 2048}, false},
	}

	for _, test := range tests {
		result := test.reading.IsIdle()
		if result != test.expected {
			t.Errorf("RateReading(%+v).IsIdle() = %v, expected %v", test.reading, result, test.expected)
		}
	}
}
