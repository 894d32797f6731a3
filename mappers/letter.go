// Package mappers holds the map jobs shipped with the toolkit. Every
// mapper implements streaming.Mapper and closes its output channel
// before returning.
package mappers

import (
	"regexp"
	"strconv"
	"strings"

	"streammr/streaming"
)

// nonWord matches a maximal run of characters outside the word class
// [A-Za-z0-9_]. Splitting on it yields the words of a line; leading or
// trailing delimiters produce empty strings that callers must skip.
var nonWord = regexp.MustCompile(`\W+`)

// LetterMapper is the map stage of the average word length job. For
// every word in the input line it emits the word's lowercased first
// letter as the key and the word's length as the value. A downstream
// averaging reduce turns this into average word length per letter; on
// its own the output is one "<letter>\t<length>" record per word.
type LetterMapper struct{}

func (LetterMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)
	for _, word := range nonWord.Split(value, -1) {
		if len(word) > 0 {
			output <- streaming.Pair{
				Key:   strings.ToLower(word[:1]),
				Value: strconv.Itoa(len(word)),
			}
		}
	}
	return nil
}
