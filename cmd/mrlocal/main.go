// mrlocal runs a single map task locally, outside the cluster, so
// mappers can be exercised against real files. It can read plain lines
// or fixed-width column records, and write text, partitioned sqlite, or
// compressed sequence output.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"streammr/mappers"
	"streammr/streaming"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mrlocal [options]\n")
	fmt.Fprintf(os.Stderr, "Example: mrlocal -mapper logfile -input access.log -format sqlite -partitions 3 -output tmp\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	mapperName := flag.String("mapper", "letter", fmt.Sprintf("mapper to run, one of %v", mappers.Names()))
	input := flag.String("input", "-", `input file ("-" for stdin)`)
	output := flag.String("output", "-", `output file, or directory for sqlite format ("-" for stdout)`)
	format := flag.String("format", "text", "output format: text, sqlite, or seq")
	partitions := flag.Int("partitions", 1, "number of sqlite output partitions")
	columns := flag.Bool("columns", false, "read fixed-width column records instead of lines")
	merge := flag.Bool("merge", false, "merge sqlite partitions into a single map_output.db afterwards")
	flag.Parse()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	counters := streaming.NewCounters()
	mapper, err := mappers.New(*mapperName, counters)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Fatal("opening input", zap.Error(err))
		}
		defer f.Close()
		in = f
	}
	var reader streaming.RecordReader = streaming.NewLineReader(in)
	if *columns {
		reader = streaming.NewColumnReader(in, streaming.DefaultColumnWidths)
	}

	attempt := uuid.New()
	sink, paths, err := makeSink(*format, *output, *partitions, attempt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	task := &streaming.MapTask{
		Mapper:   mapper,
		Sink:     sink,
		Counters: counters,
		Logger:   logger,
		ID:       attempt,
	}
	if err := task.Run(reader); err != nil {
		logger.Fatal("map task failed", zap.Error(err))
	}
	if err := sink.Close(); err != nil {
		logger.Fatal("closing output", zap.Error(err))
	}

	if *merge && *format == "sqlite" {
		dest := filepath.Join(*output, "map_output.db")
		db, err := streaming.MergeOutputs(paths, dest)
		if err != nil {
			logger.Fatal("merging output partitions", zap.Error(err))
		}
		db.Close()
		logger.Info("merged output partitions", zap.Int("partitions", len(paths)), zap.String("dest", dest))
	}

	counters.Report(os.Stderr)
}

// makeSink builds the requested output sink. For sqlite output it also
// returns the partition file paths for a later merge.
func makeSink(format, output string, partitions int, attempt uuid.UUID) (streaming.Sink, []string, error) {
	switch format {
	case "text":
		if output == "-" {
			return streaming.NewTextSink(os.Stdout), nil, nil
		}
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %v", err)
		}
		return &fileSink{Sink: streaming.NewTextSink(f), f: f}, nil, nil

	case "sqlite":
		if output == "-" {
			return nil, nil, fmt.Errorf("sqlite format needs -output set to a directory")
		}
		pattern := fmt.Sprintf("map_%s_output_%%d.db", attempt)
		sink, err := streaming.NewSQLiteSink(output, pattern, partitions, streaming.HashPartitioner{})
		if err != nil {
			return nil, nil, err
		}
		return sink, sink.Paths(), nil

	case "seq":
		if output == "-" {
			return nil, nil, fmt.Errorf("seq format needs -output set to a file")
		}
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %v", err)
		}
		sink, err := streaming.NewSequenceSink(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return &fileSink{Sink: sink, f: f}, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown output format %q", format)
}

// fileSink closes the backing file after the wrapped sink flushes.
type fileSink struct {
	streaming.Sink
	f *os.File
}

func (s *fileSink) Close() error {
	if err := s.Sink.Close(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
