package streaming

import (
	"bufio"
	"fmt"
	"io"
)

// A Sink receives the pairs emitted by a map task. Close flushes any
// buffered output; the sink must not be written to afterwards.
type Sink interface {
	Write(p Pair) error
	Close() error
}

// TextSink writes pairs as tab-separated lines, one record per line.
// This is the streaming wire format consumed by the surrounding
// framework: <key><TAB><value> with no header or trailer.
type TextSink struct {
	w *bufio.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

func (s *TextSink) Write(p Pair) error {
	if _, err := fmt.Fprintf(s.w, "%s\t%s\n", p.Key, p.Value); err != nil {
		return fmt.Errorf("writing record: %v", err)
	}
	return nil
}

func (s *TextSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing records: %v", err)
	}
	return nil
}
