package health

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestWriteSnapshotShape(t *testing.T) {
	snapshot := Snapshot{
		Status:          StatusHealthy,
		CPUUsage:        15.2,
		MemoryTotal:     17179869184,
		MemoryAvailable: 8589934592,
		MemoryUsed:      8589934592,
		MemoryPercent:   50.0,
		DiskTotal:       1000204886016,
		DiskUsed:        500102443008,
		DiskFree:        500102443008,
		DiskPercent:     50.0,
		DiskReadBytes:   1234567890,
		DiskWriteBytes:  987654321,
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snapshot); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("Output is not newline terminated")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected a single line, got %q", out)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	wantKeys := []string{
		"status", "cpu_usage",
		"memory_total", "memory_available", "memory_used", "memory_percent",
		"disk_total", "disk_used", "disk_free", "disk_percent",
		"disk_read_bytes", "disk_write_bytes",
	}
	if len(decoded) != len(wantKeys) {
		t.Errorf("Expected %d keys, got %d", len(wantKeys), len(decoded))
	}
	for _, key := range wantKeys {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Missing key %q", key)
		}
	}

	// Numeric fields must be JSON numbers, never strings.
	if strings.Contains(out, `"15.2"`) || strings.Contains(out, `"17179869184"`) {
		t.Errorf("Numeric field serialized as string: %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteSnapshotWriterError(t *testing.T) {
	if err := WriteSnapshot(failingWriter{}, Snapshot{Status: StatusHealthy}); err == nil {
		t.Error("Expected an error from a failing writer, got none")
	}
}
