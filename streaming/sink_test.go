package streaming

import (
	"bytes"
	"testing"
)

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf)

	pairs := []Pair{{"h", "5"}, {"w", "5"}}
	for _, p := range pairs {
		if err := sink.Write(p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := "h\t5\nw\t5\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
