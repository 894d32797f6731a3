package streaming

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The Mapper interface represents the contract a client job must
// implement to plug into the library. The mapper is called once per
// input record and feeds its results back through the output channel.
// The mapper must close the channel before returning, even on error.
type Mapper interface {
	Map(key, value string, output chan<- Pair) error
}

// log a progress line every this many input records
const progressInterval = 10000

// task counter group and names reported by every map task
const (
	taskCounterGroup = "MapTask"
	inputRecords     = "InputRecords"
	outputRecords    = "OutputRecords"
)

// A MapTask runs a single map attempt: it reads records from a
// RecordReader, invokes the Mapper once per record, and routes every
// emitted pair to the Sink. Each attempt is identified by a UUID used
// in log fields and temporary output names.
type MapTask struct {
	Mapper   Mapper
	Sink     Sink
	Counters *Counters
	Logger   *zap.Logger
	ID       uuid.UUID
}

// NewMapTask assembles a task with a fresh attempt ID. A nil counters
// argument gets the task its own private set.
func NewMapTask(m Mapper, sink Sink, counters *Counters, logger *zap.Logger) *MapTask {
	if counters == nil {
		counters = NewCounters()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MapTask{
		Mapper:   m,
		Sink:     sink,
		Counters: counters,
		Logger:   logger,
		ID:       uuid.New(),
	}
}

// Run consumes the input stream to exhaustion. It is a single
// sequential pass: records are processed in arrival order, and the
// pairs for each record reach the sink in the order the mapper emitted
// them. The stream is consumed destructively; a task cannot be rerun.
func (task *MapTask) Run(in RecordReader) error {
	if task.Counters == nil {
		task.Counters = NewCounters()
	}
	if task.Logger == nil {
		task.Logger = zap.NewNop()
	}

	records, emitted := 0, 0
	for {
		key, value, err := in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %v", err)
		}
		records++

		output := make(chan Pair, 200)
		done := make(chan error)

		// drain emitted pairs into the sink while the mapper runs
		go task.writeOutput(output, done, &emitted)

		mapErr := task.Mapper.Map(key, value, output)
		writeErr := <-done
		if mapErr != nil {
			return fmt.Errorf("mapper on record %s: %v", key, mapErr)
		}
		if writeErr != nil {
			return fmt.Errorf("writing output: %v", writeErr)
		}

		if records%progressInterval == 0 {
			task.Logger.Debug("map progress",
				zap.String("task", task.ID.String()),
				zap.Int("records", records),
				zap.Int("pairs", emitted))
		}
	}

	task.Counters.Increment(taskCounterGroup, inputRecords, int64(records))
	task.Counters.Increment(taskCounterGroup, outputRecords, int64(emitted))

	task.Logger.Info("map task complete",
		zap.String("task", task.ID.String()),
		zap.Int("records", records),
		zap.Int("pairs", emitted))
	return nil
}

// writeOutput drains one record's worth of pairs into the sink. On a
// sink error it keeps draining so the mapper never blocks on a full
// channel, and reports the first error once the channel closes.
func (task *MapTask) writeOutput(output <-chan Pair, done chan<- error, count *int) {
	var firstErr error
	for pair := range output {
		if firstErr != nil {
			continue
		}
		if err := task.Sink.Write(pair); err != nil {
			firstErr = err
			continue
		}
		*count++
	}
	done <- firstErr
}
