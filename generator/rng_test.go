package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandSeeded(t *testing.T) {
	a, sa := newRand(seeded(123))
	b, sb := newRand(seeded(123))
	assert.EqualValues(t, 123, sa)
	assert.Equal(t, sa, sb)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewRandNegativeSeed(t *testing.T) {
	r, s := newRand(seeded(-5))
	assert.EqualValues(t, -5, s)
	assert.NotNil(t, r)
}

func TestIntBetween(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]bool)
	for range 1000 {
		v := intBetween(r, 3, 6)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, 9, intBetween(r, 9, 9))
}

func TestDistinctPair(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	seen := make(map[[2]int]bool)
	for range 2000 {
		a, b := distinctPair(r, 3)
		require.NotEqual(t, a, b)
		require.True(t, a >= 0 && a < 3 && b >= 0 && b < 3)
		seen[[2]int{a, b}] = true
	}
	// every ordered pair of distinct indices is reachable
	assert.Len(t, seen, 6)

	a, b := distinctPair(r, 2)
	assert.ElementsMatch(t, []int{0, 1}, []int{a, b})
}

func TestNameGenerator(t *testing.T) {
	ng := NewNameGenerator(rand.New(rand.NewPCG(5, 6)))
	chars := make(map[rune]bool)
	for range 500 {
		name := ng.Next()
		require.Regexp(t, namePattern, name)
		for _, c := range name {
			chars[c] = true
		}
	}
	assert.Len(t, chars, len(nameAlphabet))
}
