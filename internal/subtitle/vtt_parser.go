package subtitle

import (
	"errors"
	"math/bits"
	"strconv"
	"strings"
)

const (
	vttHeader    = "WEBVTT\r\n\r\n"
	crlf         = "\r\n"
	blockDivider = "\r\n\r\n"
	timingArrow  = " --> "
)

// BlockIterator yields the raw cue blocks of a document in order. It cannot
// be restarted.
type BlockIterator struct {
	rest  string
	index int
	done  bool
}

// SplitBlocks checks the WebVTT header and returns an iterator over the
// blocks that follow it.
func SplitBlocks(doc string) (*BlockIterator, error) {
	content, ok := strings.CutPrefix(doc, vttHeader)
	if !ok {
		return nil, &FormatError{
			Kind: KindHeader,
			Msg:  "not a valid WebVTT file",
		}
	}
	return &BlockIterator{rest: content}, nil
}

// Next returns the next block. Iteration ends at the first block that is
// empty after trimming whitespace; anything after it is never visited.
func (it *BlockIterator) Next() (Block, bool) {
	if it.done {
		return Block{}, false
	}

	text, rest, found := strings.Cut(it.rest, blockDivider)
	if !found {
		it.done = true
	}
	it.rest = rest

	if strings.TrimSpace(text) == "" {
		it.done = true
		return Block{}, false
	}

	block := Block{Index: it.index, Text: text}
	it.index++
	return block, true
}

// ParseCue splits a block into id, timing line and text. The text keeps any
// further line breaks.
func ParseCue(block Block) (Cue, error) {
	cue, err := parseCue(block.Text)
	if err != nil {
		return Cue{}, &CueError{
			Index: block.Index,
			Block: block.Text,
			Err:   err,
		}
	}
	return cue, nil
}

func parseCue(text string) (Cue, error) {
	id, rest, ok := strings.Cut(text, crlf)
	if !ok {
		return Cue{}, &FormatError{
			Kind: KindBlockStructure,
			Msg:  "invalid line id format",
		}
	}

	startEnd, body, ok := strings.Cut(rest, crlf)
	if !ok {
		return Cue{}, &FormatError{
			Kind: KindBlockStructure,
			Msg:  "invalid line start-end format",
			Err:  errors.New("cannot split by CRLF"),
		}
	}

	start, end, ok := strings.Cut(startEnd, timingArrow)
	if !ok {
		return Cue{}, &FormatError{
			Kind: KindTimingFormat,
			Msg:  "invalid line start-end format",
			Err:  errors.New("cannot split by arrow"),
		}
	}

	startMS, err := ConvertTimer(start)
	if err != nil {
		return Cue{}, err
	}
	endMS, err := ConvertTimer(end)
	if err != nil {
		return Cue{}, err
	}

	return Cue{
		ID:      id,
		StartMS: startMS,
		EndMS:   endMS,
		Text:    body,
	}, nil
}

// ConvertTimer turns HH:MM:SS.mmm into milliseconds. Component ranges are not
// checked, so "00:90:00.000" is 90 minutes, but a total that overflows uint64
// is an error.
func ConvertTimer(s string) (uint64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, timerError(s, nil)
	}
	seconds, millis, ok := strings.Cut(parts[2], ".")
	if !ok {
		return 0, timerError(s, nil)
	}

	components := [4]string{parts[0], parts[1], seconds, millis}
	var values [4]uint64
	for i, c := range components {
		if !isDigits(c) {
			return 0, timerError(s, nil)
		}
		v, err := strconv.ParseUint(c, 10, 64)
		if err != nil {
			return 0, timerError(s, err)
		}
		values[i] = v
	}

	var total uint64
	for i, scale := range timerScales {
		hi, product := bits.Mul64(values[i], scale)
		if hi != 0 {
			return 0, timerError(s, errOverflow)
		}
		var carry uint64
		total, carry = bits.Add64(total, product, 0)
		if carry != 0 {
			return 0, timerError(s, errOverflow)
		}
	}
	return total, nil
}

// milliseconds per hour, minute, second and millisecond
var timerScales = [4]uint64{3_600_000, 60_000, 1_000, 1}

var errOverflow = errors.New("timestamp does not fit in 64-bit milliseconds")

func timerError(s string, cause error) error {
	if cause == nil {
		cause = errors.New("expected HH:MM:SS.mmm, got " + strconv.Quote(s))
	}
	return &FormatError{
		Kind: KindTimestamp,
		Msg:  "invalid timer format",
		Err:  cause,
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
