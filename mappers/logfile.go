package mappers

import (
	"strings"

	"streammr/streaming"
)

// LogFileMapper maps web server access logs to (client IP, "1") pairs,
// one per request, for a hit-count reduce.
//
// Example input line:
// 96.7.4.14 - - [24/Apr/2011:04:20:11 -0400] "GET /cat.jpg HTTP/1.1" 200 12433
type LogFileMapper struct{}

func (LogFileMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)
	fields := strings.Split(value, " ")
	if len(fields) > 0 && fields[0] != "" {
		output <- streaming.Pair{Key: fields[0], Value: "1"}
	}
	return nil
}
