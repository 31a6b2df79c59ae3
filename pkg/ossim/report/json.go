package report

import (
	"encoding/json"
	"io"
)

// WriteJSON marshals the full summary as indented JSON, ported from the
// teacher's jsonF writer but as one complete document instead of a
// streamed per-tick array: a finished run's report is produced once, at
// the end, not incrementally.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
