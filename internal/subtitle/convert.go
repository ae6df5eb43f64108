package subtitle

import (
	"fmt"
	"io"

	"github.com/mgpai22/vtt2csv/internal/logging"
)

// Converter turns a WebVTT document into CSV rows.
type Converter struct {
	logger *logging.Logger
}

func NewConverter(logger *logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{logger: logger}
}

// Convert reads all of r and writes the header and one row per cue to w. It
// stops at the first malformed block; rows written before it stay written.
// Returns the number of cue rows written.
func (c *Converter) Convert(r io.Reader, w io.Writer) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	c.logger.Debugw("Read input", "bytes", len(data))

	blocks, err := SplitBlocks(string(data))
	if err != nil {
		return 0, err
	}

	return c.writeCues(blocks, NewCSVWriter(w))
}

func (c *Converter) writeCues(blocks *BlockIterator, out Writer) (int, error) {
	if err := out.WriteHeader(); err != nil {
		return 0, err
	}

	written := 0
	for {
		block, ok := blocks.Next()
		if !ok {
			break
		}

		cue, err := ParseCue(block)
		if err != nil {
			c.logger.Debugw("Failed to parse cue",
				"index", block.Index,
				"error", err,
			)
			return written, err
		}

		if err := out.Write(cue); err != nil {
			return written, err
		}
		written++

		c.logger.Debugw("Wrote cue",
			"index", block.Index,
			"id", cue.ID,
			"start_ms", cue.StartMS,
			"end_ms", cue.EndMS,
		)
	}

	if err := out.Flush(); err != nil {
		return written, err
	}
	return written, nil
}
