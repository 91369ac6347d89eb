package chained

import "fmt"

// Stats is a point-in-time snapshot of bucket occupancy for a HashMap.
// Collecting it never mutates the table.
type Stats struct {
	Capacity       int
	Size           int
	UsedBuckets    int
	LoadFactor     float64
	MaxChainLength int
	AvgChainLength float64
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"capacity=%d, size=%d, used=%d, load=%.3f, max-chain=%d, avg-chain=%.2f",
		s.Capacity, s.Size, s.UsedBuckets, s.LoadFactor, s.MaxChainLength, s.AvgChainLength,
	)
}

// Stats walks every bucket once and aggregates the chain length
// distribution. The average is taken over used buckets only and is zero
// for an empty table.
func (m *HashMap[K, V]) Stats() Stats {
	st := Stats{
		Capacity:   len(m.buckets),
		Size:       int(m.keys),
		LoadFactor: m.PercentFull(),
	}
	var total int
	for i := 0; i < len(m.buckets); i++ {
		n := m.buckets[i].length()
		if n == 0 {
			continue
		}
		st.UsedBuckets++
		total += n
		if n > st.MaxChainLength {
			st.MaxChainLength = n
		}
	}
	if st.UsedBuckets > 0 {
		st.AvgChainLength = float64(total) / float64(st.UsedBuckets)
	}
	return st
}
