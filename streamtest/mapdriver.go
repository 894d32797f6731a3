// Package streamtest provides a harness for testing mappers the way the
// framework drives them: feed input records in, collect emitted pairs,
// and compare them against expected output in order.
package streamtest

import (
	"testing"

	"streammr/streaming"
)

// MapDriver exercises a single mapper. Inputs and expected outputs are
// declared with the With* methods, then checked with RunTest.
type MapDriver struct {
	mapper streaming.Mapper
	inputs []streaming.Pair
	want   []streaming.Pair
}

func NewMapDriver(m streaming.Mapper) *MapDriver {
	return &MapDriver{mapper: m}
}

// WithInput adds one input record. The key plays the role of the record
// offset and is usually ignored by mappers.
func (d *MapDriver) WithInput(key, value string) *MapDriver {
	d.inputs = append(d.inputs, streaming.Pair{Key: key, Value: value})
	return d
}

// WithOutput adds one expected output pair. Expected pairs must be
// declared in emission order.
func (d *MapDriver) WithOutput(key, value string) *MapDriver {
	d.want = append(d.want, streaming.Pair{Key: key, Value: value})
	return d
}

// Run feeds every input through the mapper and returns the emitted
// pairs in order, without checking them.
func (d *MapDriver) Run() ([]streaming.Pair, error) {
	var got []streaming.Pair
	for _, in := range d.inputs {
		output := make(chan streaming.Pair)
		done := make(chan struct{})
		go func() {
			for p := range output {
				got = append(got, p)
			}
			close(done)
		}()
		err := d.mapper.Map(in.Key, in.Value, output)
		<-done
		if err != nil {
			return got, err
		}
	}
	return got, nil
}

// RunTest runs the mapper and fails the test if the emitted pairs do
// not match the expected output exactly, in order.
func (d *MapDriver) RunTest(t *testing.T) {
	t.Helper()

	got, err := d.Run()
	if err != nil {
		t.Fatalf("mapper returned error: %v", err)
	}
	if len(got) != len(d.want) {
		t.Fatalf("emitted %d pairs, want %d: got %v, want %v", len(got), len(d.want), got, d.want)
	}
	for i := range got {
		if got[i] != d.want[i] {
			t.Errorf("pair %d: got %s, want %s", i, got[i], d.want[i])
		}
	}
}
