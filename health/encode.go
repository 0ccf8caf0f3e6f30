package health

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteSnapshot serializes the snapshot as one JSON object followed by a
// newline. The record is marshalled fully before anything is written, so
// the writer receives either the complete object or nothing.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
