package streaming

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A RecordReader yields input records one at a time. Next returns io.EOF
// once the stream is exhausted; any other error is fatal to the task.
type RecordReader interface {
	Next() (key, value string, err error)
}

// LineReader reads newline-delimited records from a stream. The key for
// each record is the decimal byte offset of the line within the stream,
// and the value is the line with its terminator stripped. A final line
// with no trailing newline still produces a record.
type LineReader struct {
	r      *bufio.Reader
	offset int64
	done   bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

func (lr *LineReader) Next() (string, string, error) {
	if lr.done {
		return "", "", io.EOF
	}
	line, err := lr.r.ReadString('\n')
	if err == io.EOF {
		lr.done = true
		if line == "" {
			return "", "", io.EOF
		}
	} else if err != nil {
		return "", "", fmt.Errorf("reading line at offset %d: %v", lr.offset, err)
	}

	key := strconv.FormatInt(lr.offset, 10)
	lr.offset += int64(len(line))

	value := strings.TrimSuffix(line, "\n")
	value = strings.TrimSuffix(value, "\r")
	return key, value, nil
}

// ColumnWidths configures the fixed-width fields of a column text file:
// a record key followed by last name, first name, and date fields.
type ColumnWidths struct {
	Key       int
	LastName  int
	FirstName int
	Date      int
}

func (w ColumnWidths) total() int {
	return w.Key + w.LastName + w.FirstName + w.Date
}

// DefaultColumnWidths matches the layout of the sample column data set.
var DefaultColumnWidths = ColumnWidths{Key: 7, LastName: 25, FirstName: 10, Date: 8}

// ColumnReader reads fixed-width column records. Records are stored back
// to back with no separators; each record yields its trimmed key field
// as the key and "last,first<TAB>date" as the value.
type ColumnReader struct {
	r   io.Reader
	w   ColumnWidths
	buf []byte
}

func NewColumnReader(r io.Reader, w ColumnWidths) *ColumnReader {
	return &ColumnReader{r: r, w: w, buf: make([]byte, w.total())}
}

func (cr *ColumnReader) Next() (string, string, error) {
	if _, err := io.ReadFull(cr.r, cr.buf); err != nil {
		if err == io.EOF {
			return "", "", io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return "", "", fmt.Errorf("truncated column record at end of input")
		}
		return "", "", fmt.Errorf("reading column record: %v", err)
	}

	pos := 0
	field := func(width int) string {
		s := strings.TrimSpace(string(cr.buf[pos : pos+width]))
		pos += width
		return s
	}

	key := field(cr.w.Key)
	last := field(cr.w.LastName)
	first := field(cr.w.FirstName)
	date := field(cr.w.Date)
	return key, last + "," + first + "\t" + date, nil
}
