package token

import (
	"math/bits"

	"github.com/halborn/pcomb/state"
)

// initialCapacity is the cache's starting slot count.
const initialCapacity = 1024

// loadFactorThreshold is the occupancy ratio past which the cache
// doubles and reinserts every live entry.
const loadFactorThreshold = 0.8

// goldenRatio64 is the odd multiplicative constant used for Fibonacci
// hashing of the integer position key.
const goldenRatio64 = 0x9E3779B97F4A7C15

// result is what the cache stores per input offset: either "no token
// at this position" (found == false) or the winning base's index, end
// position and detachable effect delta.
type result struct {
	found     bool
	baseIndex int
	end       int
	delta     []state.Effect
}

// cache is an open-addressed, Robin-Hood-probed hash table keyed by
// input offset. Each occupied slot packs (storedPos+1, displacement)
// into a 64-bit control word — the "+1" reserves the all-zero word as
// "empty" — alongside a parallel results array.
//
// The table never changes observable parse behavior; it only changes
// how often the longest-match procedure has to run.
type cache struct {
	control []uint64
	results []result
	size    int
	maxDisp int
}

func newCache() *cache {
	return &cache{
		control: make([]uint64, initialCapacity),
		results: make([]result, initialCapacity),
	}
}

const dispBits = 16
const dispMask = 1<<dispBits - 1

func packControl(posPlus1 uint64, disp int) uint64 {
	return posPlus1<<dispBits | uint64(disp&dispMask)
}

func unpackControl(ctrl uint64) (posPlus1 uint64, disp int) {
	return ctrl >> dispBits, int(ctrl & dispMask)
}

// homeSlot returns the ideal (zero-displacement) slot for pos in a
// table of the given capacity, which must be a power of two.
func homeSlot(pos int, capacity int) int {
	shift := uint(64 - bits.Len(uint(capacity-1)))
	h := uint64(pos) * goldenRatio64
	return int(h >> shift)
}

// lookup returns the cached result for pos, and whether pos has ever
// been resolved (hit or cached miss). The probe is bounded by
// maxDisp — correct only because every insertion maintains maxDisp as
// a true upper bound on probe distance.
func (c *cache) lookup(pos int) (result, bool) {
	capacity := len(c.control)
	if capacity == 0 {
		return result{}, false
	}
	idx := homeSlot(pos, capacity)
	keyPlus1 := uint64(pos) + 1
	for disp := 0; disp <= c.maxDisp; disp++ {
		i := (idx + disp) % capacity
		ctrl := c.control[i]
		if ctrl == 0 {
			return result{}, false
		}
		storedKeyPlus1, _ := unpackControl(ctrl)
		if storedKeyPlus1 == keyPlus1 {
			return c.results[i], true
		}
	}
	return result{}, false
}

// insert records (or overwrites) the result for pos, growing the
// table first if occupancy would cross the load-factor threshold.
func (c *cache) insert(pos int, res result) {
	if float64(c.size+1) > loadFactorThreshold*float64(len(c.control)) {
		c.grow()
	}
	c.place(pos, res)
}

// place performs one Robin-Hood insertion without checking the load
// factor; used both by insert and by grow's reinsertion pass.
func (c *cache) place(pos int, res result) {
	capacity := len(c.control)
	idx := homeSlot(pos, capacity)
	curKeyPlus1 := uint64(pos) + 1
	curRes := res
	dist := 0
	i := idx
	for {
		ctrl := c.control[i]
		if ctrl == 0 {
			c.control[i] = packControl(curKeyPlus1, dist)
			c.results[i] = curRes
			c.size++
			if dist > c.maxDisp {
				c.maxDisp = dist
			}
			return
		}
		storedKeyPlus1, storedDist := unpackControl(ctrl)
		if storedKeyPlus1 == curKeyPlus1 {
			c.results[i] = curRes // re-resolution of an already-cached position
			return
		}
		if storedDist < dist {
			// Robin Hood: the entry at i is "poorer" (closer to its
			// home) than the one we are placing — swap, and keep
			// probing forward with the displaced entry.
			c.control[i] = packControl(curKeyPlus1, dist)
			c.results[i], curRes = curRes, c.results[i]
			curKeyPlus1 = storedKeyPlus1
			dist = storedDist
		}
		dist++
		if dist > c.maxDisp {
			c.maxDisp = dist
		}
		i = (i + 1) % capacity
	}
}

// grow doubles the table and reinserts every live entry.
func (c *cache) grow() {
	type live struct {
		pos int
		res result
	}
	entries := make([]live, 0, c.size)
	for i, ctrl := range c.control {
		if ctrl == 0 {
			continue
		}
		posPlus1, _ := unpackControl(ctrl)
		entries = append(entries, live{pos: int(posPlus1) - 1, res: c.results[i]})
	}
	newCap := len(c.control) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	c.control = make([]uint64, newCap)
	c.results = make([]result, newCap)
	c.size = 0
	c.maxDisp = 0
	for _, e := range entries {
		c.place(e.pos, e.res)
	}
}

// reset empties the cache, for Set.Flush().
func (c *cache) reset() {
	c.control = make([]uint64, initialCapacity)
	c.results = make([]result, initialCapacity)
	c.size = 0
	c.maxDisp = 0
}
