package subtitle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"id", "start", "end", "text"}

// CSV output, one row per cue
type CSVWriter struct {
	w *csv.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// writes the header row and flushes it, so it reaches the output even if
// the first cue fails
func (w *CSVWriter) WriteHeader() error {
	if err := w.w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return w.Flush()
}

// writes the cue and flushes it to the underlying writer
func (w *CSVWriter) Write(cue Cue) error {
	record := []string{
		cue.ID,
		strconv.FormatUint(cue.StartMS, 10),
		strconv.FormatUint(cue.EndMS, 10),
		cue.Text,
	}
	if err := w.w.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	return w.Flush()
}

func (w *CSVWriter) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
