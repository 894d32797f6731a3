package streaming

import "hash/fnv"

// A Partitioner routes an emitted pair to one of n output partitions.
// The returned index must be in [0, n).
type Partitioner interface {
	Partition(p Pair, n int) int
}

// HashPartitioner routes pairs by an fnv32 hash of the key, so every
// record with the same key lands in the same partition.
type HashPartitioner struct{}

func (HashPartitioner) Partition(p Pair, n int) int {
	hash := fnv.New32()
	hash.Write([]byte(p.Key))
	return int(hash.Sum32() % uint32(n))
}
