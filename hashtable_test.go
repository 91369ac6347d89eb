package hashtable_test

import (
	"testing"

	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap/chained"
	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashtable/pkg/util"
)

// both variants satisfy the shared Map contract
var (
	_ hashtable.Map[string, int] = (*chained.HashMap[string, int])(nil)
	_ hashtable.Map[string, int] = (*openaddr.HashMap[string, int])(nil)
)

func openMaps(t *testing.T) map[string]hashtable.Map[string, int] {
	t.Helper()
	chm, err := chained.NewHashMap[string, int](chained.DefaultMapSize)
	util.AssertNoError(t, err)
	oam, err := openaddr.NewHashMap[string, int](openaddr.DefaultMapSize)
	util.AssertNoError(t, err)
	return map[string]hashtable.Map[string, int]{
		"chained":  chm,
		"openaddr": oam,
	}
}

func TestMap_Contract(t *testing.T) {
	for name, m := range openMaps(t) {
		t.Run(name, func(t *testing.T) {
			m.Put("a", 1)
			m.Put("b", 2)
			m.Put("a", 10)
			util.AssertExpected(t, 2, m.Len())
			got, ok := m.Get("a")
			util.AssertExpected(t, true, ok)
			util.AssertExpected(t, 10, got)
			util.AssertExpected(t, true, m.ContainsKey("b"))
			util.AssertExpected(t, true, m.ContainsValue(2))
			_, ok = m.Del("a")
			util.AssertExpected(t, true, ok)
			util.AssertExpected(t, 1, m.Len())
			m.Clear()
			util.AssertExpected(t, true, m.IsEmpty())
		})
	}
}
