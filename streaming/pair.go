package streaming

// A Pair groups a single key/value pair. Individual mapper jobs
// (avgwordlength, wordcount, etc.) use this type when feeding results
// back to the library code.
type Pair struct {
	Key   string
	Value string
}

// String renders the pair in the tab-separated text form used on the
// output stream: one record per line, key and value joined by a tab.
func (p Pair) String() string {
	return p.Key + "\t" + p.Value
}
