package streaming

import (
	"path/filepath"
	"testing"
)

func countPairs(t *testing.T, path, key string) int {
	t.Helper()
	db, err := openDatabase(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer db.Close()

	query := "SELECT COUNT(*) AS count FROM pairs"
	args := []interface{}{}
	if key != "" {
		query += " WHERE key = ?"
		args = append(args, key)
	}
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("counting pairs in %s: %v", path, err)
	}
	return n
}

func TestSQLiteSinkPartitions(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSQLiteSink(dir, "map_test_output_%d.db", 3, HashPartitioner{})
	if err != nil {
		t.Fatalf("NewSQLiteSink: %v", err)
	}

	pairs := []Pair{
		{"apple", "1"}, {"apple", "2"},
		{"banana", "1"}, {"cherry", "9"},
	}
	for _, p := range pairs {
		if err := sink.Write(p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	total, applePartitions := 0, 0
	for _, path := range sink.Paths() {
		total += countPairs(t, path, "")
		if countPairs(t, path, "apple") > 0 {
			applePartitions++
		}
	}
	if total != len(pairs) {
		t.Errorf("total pairs across partitions: got %d, want %d", total, len(pairs))
	}
	// all values for one key must land in the same partition
	if applePartitions != 1 {
		t.Errorf("apple rows spread over %d partitions, want 1", applePartitions)
	}
}

func TestMergeOutputs(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSQLiteSink(dir, "map_test_output_%d.db", 3, HashPartitioner{})
	if err != nil {
		t.Fatalf("NewSQLiteSink: %v", err)
	}
	pairs := []Pair{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}, {"e", "5"}}
	for _, p := range pairs {
		if err := sink.Write(p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dest := filepath.Join(dir, "merged.db")
	db, err := MergeOutputs(sink.Paths(), dest)
	if err != nil {
		t.Fatalf("MergeOutputs: %v", err)
	}
	db.Close()

	if got := countPairs(t, dest, ""); got != len(pairs) {
		t.Errorf("merged pairs: got %d, want %d", got, len(pairs))
	}
}

func TestSQLiteSinkRejectsZeroPartitions(t *testing.T) {
	if _, err := NewSQLiteSink(t.TempDir(), "out_%d.db", 0, nil); err == nil {
		t.Fatal("expected error for zero partitions")
	}
}
