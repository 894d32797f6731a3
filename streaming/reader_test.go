package streaming

import (
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, r RecordReader) []Pair {
	t.Helper()
	var records []Pair
	for {
		key, value, err := r.Next()
		if err == io.EOF {
			return records
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		records = append(records, Pair{Key: key, Value: value})
	}
}

func TestLineReaderOffsets(t *testing.T) {
	got := drain(t, NewLineReader(strings.NewReader("Hello\nWorld")))
	want := []Pair{{"0", "Hello"}, {"6", "World"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineReaderCRLF(t *testing.T) {
	got := drain(t, NewLineReader(strings.NewReader("a\r\nb\r\n")))
	if len(got) != 2 || got[0].Value != "a" || got[1].Value != "b" {
		t.Errorf("got %v, want values a and b", got)
	}
}

func TestLineReaderEmptyLines(t *testing.T) {
	got := drain(t, NewLineReader(strings.NewReader("\n\n")))
	if len(got) != 2 || got[0].Value != "" || got[1].Value != "" {
		t.Errorf("got %v, want two empty records", got)
	}
}

func TestLineReaderEmptyInput(t *testing.T) {
	if got := drain(t, NewLineReader(strings.NewReader(""))); len(got) != 0 {
		t.Errorf("got %v, want no records", got)
	}
}

func TestColumnReader(t *testing.T) {
	widths := ColumnWidths{Key: 3, LastName: 5, FirstName: 4, Date: 2}
	input := "001SmithJon 12" + "002Doe  Jane34"

	got := drain(t, NewColumnReader(strings.NewReader(input), widths))
	want := []Pair{
		{"001", "Smith,Jon\t12"},
		{"002", "Doe,Jane\t34"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColumnReaderTruncatedRecord(t *testing.T) {
	widths := ColumnWidths{Key: 3, LastName: 5, FirstName: 4, Date: 2}
	r := NewColumnReader(strings.NewReader("001Smith"), widths)
	if _, _, err := r.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected truncation error, got %v", err)
	}
}
