package subtitle

// represents single subtitle cue
type Cue struct {
	ID      string
	StartMS uint64
	EndMS   uint64
	Text    string
}

// unparsed text of one candidate cue and its position in the document
type Block struct {
	Index int
	Text  string
}

// interface for consuming parsed cues in document order
type Writer interface {
	WriteHeader() error
	Write(cue Cue) error
	Flush() error
}
