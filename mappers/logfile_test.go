package mappers

import (
	"testing"

	"streammr/streamtest"
)

const sampleLogLine = `96.7.4.14 - - [24/Apr/2011:04:20:11 -0400] "GET /cat.jpg HTTP/1.1" 200 12433`

func TestLogFileMapper(t *testing.T) {
	streamtest.NewMapDriver(LogFileMapper{}).
		WithInput("0", sampleLogLine).
		WithOutput("96.7.4.14", "1").
		RunTest(t)
}

func TestLogFileMapperEmptyLine(t *testing.T) {
	streamtest.NewMapDriver(LogFileMapper{}).
		WithInput("0", "").
		RunTest(t)
}
