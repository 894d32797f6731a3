package streaming

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// Sequence files store pairs as a flat snappy-compressed stream of
// length-prefixed records. The whole stream, magic header included,
// passes through the compressor.
const seqMagic = "mrseq\x01"

// SequenceSink writes pairs to a compressed sequence file. Close
// flushes the compressor but leaves the underlying writer open.
type SequenceSink struct {
	w   *snappy.Writer
	buf []byte
}

func NewSequenceSink(w io.Writer) (*SequenceSink, error) {
	sw := snappy.NewBufferedWriter(w)
	if _, err := sw.Write([]byte(seqMagic)); err != nil {
		return nil, fmt.Errorf("writing sequence file header: %v", err)
	}
	return &SequenceSink{w: sw}, nil
}

func (s *SequenceSink) Write(p Pair) error {
	s.buf = s.buf[:0]
	s.buf = binary.AppendUvarint(s.buf, uint64(len(p.Key)))
	s.buf = append(s.buf, p.Key...)
	s.buf = binary.AppendUvarint(s.buf, uint64(len(p.Value)))
	s.buf = append(s.buf, p.Value...)
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("writing sequence record: %v", err)
	}
	return nil
}

func (s *SequenceSink) Close() error {
	if err := s.w.Close(); err != nil {
		return fmt.Errorf("flushing sequence file: %v", err)
	}
	return nil
}

// SequenceReader reads back a sequence file written by SequenceSink,
// yielding pairs in the order they were written.
type SequenceReader struct {
	r *bufio.Reader
}

func NewSequenceReader(r io.Reader) (*SequenceReader, error) {
	sr := &SequenceReader{r: bufio.NewReader(snappy.NewReader(r))}
	magic := make([]byte, len(seqMagic))
	if _, err := io.ReadFull(sr.r, magic); err != nil {
		return nil, fmt.Errorf("reading sequence file header: %v", err)
	}
	if string(magic) != seqMagic {
		return nil, fmt.Errorf("not a sequence file: bad magic %q", magic)
	}
	return sr, nil
}

// Next returns the next pair, or io.EOF at the end of the stream.
func (sr *SequenceReader) Next() (Pair, error) {
	key, err := sr.readField()
	if err == io.EOF {
		return Pair{}, io.EOF
	}
	if err != nil {
		return Pair{}, fmt.Errorf("reading sequence key: %v", err)
	}
	value, err := sr.readField()
	if err != nil {
		return Pair{}, fmt.Errorf("truncated sequence record for key %q: %v", key, err)
	}
	return Pair{Key: key, Value: value}, nil
}

func (sr *SequenceReader) readField() (string, error) {
	n, err := binary.ReadUvarint(sr.r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
