package mappers

import (
	"strings"

	"streammr/streaming"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(months))
	for i, name := range months {
		m[name] = i
	}
	return m
}()

// LogMonthMapper maps access log lines to (client IP, month) pairs.
// The month comes from the timestamp field [dd/Mmm/yyyy:hh:mm:ss];
// lines with a missing or unrecognized month emit nothing.
type LogMonthMapper struct{}

func (LogMonthMapper) Map(key, value string, output chan<- streaming.Pair) error {
	defer close(output)
	fields := strings.Split(value, " ")
	if len(fields) <= 3 {
		return nil
	}
	ip := fields[0]
	dtFields := strings.Split(fields[3], "/")
	if len(dtFields) > 1 {
		month := dtFields[1]
		if _, ok := monthIndex[month]; ok {
			output <- streaming.Pair{Key: ip, Value: month}
		}
	}
	return nil
}

// MonthPartitioner routes LogMonthMapper output by the month value:
// Jan is partition 0, Dec is partition 11. The job must be configured
// with exactly twelve output partitions for this to work.
type MonthPartitioner struct{}

func (MonthPartitioner) Partition(p streaming.Pair, n int) int {
	return monthIndex[p.Value]
}
