package mappers

import (
	"strings"

	"streammr/streaming"
)

// ImageCounterMapper tallies the image types requested in web server
// logs. It emits no pairs at all; its results are exposed entirely
// through the task counters in the ImageCounter group (jpg, gif,
// other).
type ImageCounterMapper struct {
	Counters *streaming.Counters
}

func (m *ImageCounterMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)

	// the request is the first double-quoted section of the line
	fields := strings.Split(value, `"`)
	if len(fields) <= 1 {
		return nil
	}
	request := strings.Split(fields[1], " ")
	if len(request) <= 1 {
		return nil
	}

	name := strings.ToLower(request[1])
	switch {
	case strings.HasSuffix(name, ".jpg"):
		m.Counters.Increment("ImageCounter", "jpg", 1)
	case strings.HasSuffix(name, ".gif"):
		m.Counters.Increment("ImageCounter", "gif", 1)
	default:
		m.Counters.Increment("ImageCounter", "other", 1)
	}
	return nil
}
