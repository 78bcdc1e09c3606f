package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_NextIsStrictlyIncreasing(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
	assert.Equal(t, int64(2), c.Next())
	assert.Equal(t, int64(2), c.Current())
}

func TestClock_NewClockAtResumes(t *testing.T) {
	c := NewClockAt(99)
	assert.Equal(t, int64(99), c.Current())
	assert.Equal(t, int64(100), c.Next())
}

func TestClock_ConcurrentNextNeverDuplicates(t *testing.T) {
	c := NewClock()
	const n = 200

	var wg sync.WaitGroup
	seqs := make([]int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seqs[i] = c.Next()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, s := range seqs {
		assert.False(t, seen[s], "duplicate seq %d", s)
		seen[s] = true
	}
	assert.Equal(t, int64(n), c.Current())
}
