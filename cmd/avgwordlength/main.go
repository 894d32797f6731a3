// Streaming map task for the average word length job. Reads text lines
// on stdin and writes one "<first letter>\t<word length>" record per
// word to stdout. Takes no flags; diagnostics and the counter report go
// to stderr only.
package main

import (
	"os"

	"go.uber.org/zap"

	"streammr/mappers"
	"streammr/streaming"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	sink := streaming.NewTextSink(os.Stdout)
	task := streaming.NewMapTask(mappers.LetterMapper{}, sink, nil, logger)

	if err := task.Run(streaming.NewLineReader(os.Stdin)); err != nil {
		logger.Fatal("map task failed", zap.Error(err))
	}
	if err := sink.Close(); err != nil {
		logger.Fatal("flushing output", zap.Error(err))
	}
	task.Counters.Report(os.Stderr)
}
