package streaming

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

func openDatabase(path string) (*sql.DB, error) {
	options :=
		"?" + "_busy_timeout=10000" +
			"&" + "_case_sensitive_like=OFF" +
			"&" + "_foreign_keys=ON" +
			"&" + "_journal_mode=OFF" +
			"&" + "_locking_mode=NORMAL" +
			"&" + "mode=rw" +
			"&" + "_synchronous=OFF"
	db, err := sql.Open("sqlite3", path+options)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %v", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %v", path, err)
	}
	return db, nil
}

// createDatabase creates a fresh pairs database at path, replacing any
// existing file.
func createDatabase(path string) (*sql.DB, error) {
	os.Remove(path)
	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`create table pairs (key text, value text);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating pairs table in %s: %v", path, err)
	}
	return db, nil
}

// SQLiteSink stores map output as partitioned sqlite databases, one per
// reduce partition, each holding a pairs(key, value) table. Pairs are
// routed to a partition by the configured Partitioner, so all values
// for a key end up in the same output file.
type SQLiteSink struct {
	part  Partitioner
	dbs   []*sql.DB
	stmts []*sql.Stmt
	paths []string
}

// NewSQLiteSink creates the partition databases under dir. The pattern
// is a format string with one %d verb for the partition number, e.g.
// "map_3f2a_output_%d.db". A nil partitioner defaults to hashing.
func NewSQLiteSink(dir, pattern string, partitions int, part Partitioner) (*SQLiteSink, error) {
	if partitions < 1 {
		return nil, fmt.Errorf("need at least one output partition, got %d", partitions)
	}
	if part == nil {
		part = HashPartitioner{}
	}

	s := &SQLiteSink{part: part}
	for r := 0; r < partitions; r++ {
		path := filepath.Join(dir, fmt.Sprintf(pattern, r))
		db, err := createDatabase(path)
		if err != nil {
			s.Close()
			return nil, err
		}
		stmt, err := db.Prepare("INSERT INTO pairs (key, value) values (?, ?)")
		if err != nil {
			db.Close()
			s.Close()
			return nil, fmt.Errorf("preparing insert for %s: %v", path, err)
		}
		s.dbs = append(s.dbs, db)
		s.stmts = append(s.stmts, stmt)
		s.paths = append(s.paths, path)
	}
	return s, nil
}

func (s *SQLiteSink) Write(p Pair) error {
	r := s.part.Partition(p, len(s.stmts))
	if r < 0 || r >= len(s.stmts) {
		return fmt.Errorf("partitioner routed key %q to partition %d of %d", p.Key, r, len(s.stmts))
	}
	if _, err := s.stmts[r].Exec(p.Key, p.Value); err != nil {
		return fmt.Errorf("inserting pair: %v", err)
	}
	return nil
}

// Paths lists the partition database files in partition order.
func (s *SQLiteSink) Paths() []string {
	paths := make([]string, len(s.paths))
	copy(paths, s.paths)
	return paths
}

func (s *SQLiteSink) Close() error {
	var firstErr error
	for _, stmt := range s.stmts {
		stmt.Close()
	}
	for _, db := range s.dbs {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MergeOutputs gathers a set of pairs databases into a single database
// at dest. The source files are left in place; the caller owns the
// returned handle.
func MergeOutputs(paths []string, dest string) (*sql.DB, error) {
	db, err := createDatabase(dest)
	if err != nil {
		return nil, fmt.Errorf("creating merged database: %v", err)
	}
	for _, path := range paths {
		if err := gatherInto(db, path); err != nil {
			db.Close()
			return nil, fmt.Errorf("merging %s: %v", path, err)
		}
	}
	return db, nil
}

func gatherInto(out *sql.DB, in string) error {
	if _, err := out.Exec(`ATTACH ? AS merge; INSERT INTO pairs SELECT * FROM merge.pairs; DETACH merge;`, in); err != nil {
		return fmt.Errorf("attaching %s: %v", in, err)
	}
	return nil
}
