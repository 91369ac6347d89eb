package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap/chained"
	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashtable/pkg/util"
)

const count = 100000

func main() {
	chm, err := chained.NewHashMap[string, int](chained.DefaultMapSize)
	errCheck(err)

	keys := make([]string, count)
	for i := range keys {
		keys[i] = util.RandString(16)
	}

	ts := time.Now()
	for i, key := range keys {
		chm.Put(key, i)
	}
	fmt.Printf("chained: %d inserts in %s\n", count, time.Since(ts))

	st := chm.Stats()
	w := tabwriter.NewWriter(os.Stdout, 5, 4, 4, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "capacity\tsize\tused\tload\tmax-chain\tavg-chain\t")
	fmt.Fprintf(w, "%d\t%d\t%d\t%.3f\t%d\t%.2f\t\n",
		st.Capacity, st.Size, st.UsedBuckets, st.LoadFactor, st.MaxChainLength, st.AvgChainLength)
	w.Flush()

	oam, err := openaddr.NewHashMap[string, int](
		openaddr.DefaultMapSize,
		openaddr.WithHasher(func(key string) uint64 {
			return hash.Spread(hash.SumString64(key))
		}),
	)
	errCheck(err)

	ts = time.Now()
	for i, key := range keys {
		oam.Put(key, i)
	}
	fmt.Printf("openaddr: %d inserts in %s\n", count, time.Since(ts))
	fmt.Printf("openaddr: load=%.3f, max-probe=%d, tombstones=%d\n",
		oam.PercentFull(), oam.MaxProbeLength(), oam.Tombstones())

	for i, key := range keys {
		got, ok := oam.Get(key)
		if !ok || got != i {
			log.Panicf("lost key %q during inserts", key)
		}
	}

	for _, key := range keys[:count/2] {
		chm.Del(key)
		oam.Del(key)
	}
	fmt.Printf("after deleting %d keys:\n", count/2)
	fmt.Printf("chained:  %s\n", chm.Stats())
	fmt.Printf("openaddr: load=%.3f, tombstones=%d\n", oam.PercentFull(), oam.Tombstones())
}

func errCheck(err error) {
	if err != nil {
		log.Panicf("got error: %v\n", err)
	}
}
