package hash

import (
	"testing"

	"github.com/scottcagno/hashtable/pkg/util"
)

func TestSum64_Consistent(t *testing.T) {
	b := []byte("the quick brown fox")
	util.AssertExpected(t, Sum64(b), Sum64(b))
	util.AssertExpected(t, Sum64(b), SumString64(string(b)))
	util.AssertTrue(t, Sum64(b) != Sum64([]byte("the quick brown fix")))
}

func TestForType_Consistent(t *testing.T) {
	fn := ForType[string]()
	util.AssertExpected(t, fn("alpha"), fn("alpha"))
	util.AssertTrue(t, fn("alpha") != fn("beta"))

	intFn := ForType[int]()
	util.AssertExpected(t, intFn(42), intFn(42))
}

func TestSpread_Mixes(t *testing.T) {
	// sequential inputs should not produce sequential outputs
	a, b, c := Spread(1), Spread(2), Spread(3)
	util.AssertTrue(t, a != b && b != c && a != c)
	util.AssertTrue(t, b-a != 1)
	// spreading is deterministic
	util.AssertExpected(t, a, Spread(1))
}
