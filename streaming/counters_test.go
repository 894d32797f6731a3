package streaming

import (
	"bytes"
	"testing"
)

func TestCounters(t *testing.T) {
	c := NewCounters()
	c.Increment("ImageCounter", "jpg", 1)
	c.Increment("ImageCounter", "jpg", 2)
	c.Increment("MapTask", "InputRecords", 10)

	if got := c.Value("ImageCounter", "jpg"); got != 3 {
		t.Errorf("jpg: got %d, want 3", got)
	}
	if got := c.Value("ImageCounter", "gif"); got != 0 {
		t.Errorf("gif: got %d, want 0", got)
	}
}

func TestCountersReport(t *testing.T) {
	c := NewCounters()
	c.Increment("MapTask", "InputRecords", 2)
	c.Increment("ImageCounter", "jpg", 1)
	c.Increment("ImageCounter", "gif", 4)

	var buf bytes.Buffer
	if err := c.Report(&buf); err != nil {
		t.Fatalf("Report: %v", err)
	}

	want := "reporter:counter:ImageCounter,gif,4\n" +
		"reporter:counter:ImageCounter,jpg,1\n" +
		"reporter:counter:MapTask,InputRecords,2\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
