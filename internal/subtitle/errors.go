package subtitle

import (
	"errors"
	"fmt"
	"strings"
)

// classifies format failures
type Kind int

const (
	KindHeader Kind = iota + 1
	KindBlockStructure
	KindTimingFormat
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindBlockStructure:
		return "block structure"
	case KindTimingFormat:
		return "timing format"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// FormatError reports malformed input. Err holds the underlying cause, if any.
type FormatError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// CueError attaches the offending block to a parse failure.
type CueError struct {
	Index int
	Block string
	Err   error
}

func (e *CueError) Error() string {
	return e.message() + ": " + e.Err.Error()
}

func (e *CueError) Unwrap() error {
	return e.Err
}

func (e *CueError) message() string {
	return fmt.Sprintf(
		"an error occurred on the line `%q` around line `%d`",
		e.Block,
		e.Index,
	)
}

// KindOf returns the kind of the first FormatError in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// Describe renders err and its causes, outermost first.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	messages := chain(err)

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(messages[0])
	if len(messages) > 1 {
		sb.WriteString("\n\nCaused by:")
		for i, msg := range messages[1:] {
			sb.WriteString(fmt.Sprintf("\n    %d: %s", i, msg))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// one message per layer, without the text of the wrapped causes
func chain(err error) []string {
	var messages []string
	for err != nil {
		switch e := err.(type) {
		case *CueError:
			messages = append(messages, e.message())
		case *FormatError:
			messages = append(messages, e.Msg)
		default:
			msg := err.Error()
			if next := errors.Unwrap(err); next != nil {
				msg = strings.TrimSuffix(msg, ": "+next.Error())
			}
			messages = append(messages, msg)
		}
		err = errors.Unwrap(err)
	}
	return messages
}
