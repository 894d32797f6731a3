package mappers

import (
	"strings"

	"streammr/streaming"
)

// StringPairMapper emits the first two words of each line as a
// composite "left,right" key with a count of one. Lines with fewer
// than three fields are skipped.
type StringPairMapper struct{}

func (StringPairMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)
	line := strings.TrimSpace(value)
	if line == "" {
		return nil
	}
	words := nonWord.Split(line, 3)
	if len(words) > 2 && words[0] != "" && words[1] != "" {
		output <- streaming.Pair{Key: words[0] + "," + words[1], Value: "1"}
	}
	return nil
}
