package mappers

import (
	"fmt"
	"sort"

	"streammr/streaming"
)

// New returns the mapper registered under name. Mappers that report
// through task counters are handed the task's counter set.
func New(name string, counters *streaming.Counters) (streaming.Mapper, error) {
	switch name {
	case "letter":
		return LetterMapper{}, nil
	case "wordcount":
		return WordMapper{}, nil
	case "logfile":
		return LogFileMapper{}, nil
	case "logmonth":
		return LogMonthMapper{}, nil
	case "imagecounter":
		return &ImageCounterMapper{Counters: counters}, nil
	case "stringpair":
		return StringPairMapper{}, nil
	}
	return nil, fmt.Errorf("unknown mapper %q (have %v)", name, Names())
}

// Names lists the registered mapper names in sorted order.
func Names() []string {
	names := []string{"letter", "wordcount", "logfile", "logmonth", "imagecounter", "stringpair"}
	sort.Strings(names)
	return names
}
