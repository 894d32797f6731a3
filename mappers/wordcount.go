package mappers

import (
	"strings"

	"streammr/streaming"
)

// WordMapper is the map stage of the word count job: one ("word", "1")
// pair per word, lowercased. Single-character tokens are skipped as
// noise.
type WordMapper struct{}

func (WordMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)
	line := strings.TrimSpace(value)
	if line == "" {
		return nil
	}
	for _, word := range nonWord.Split(line, -1) {
		word = strings.ToLower(word)
		if len(word) > 1 {
			output <- streaming.Pair{Key: word, Value: "1"}
		}
	}
	return nil
}
