package accountnumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n, err := Generate()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, Min, "account number below range")
		assert.Less(t, n, Max, "account number above range")
	}
}

func TestGenerateNotSequential(t *testing.T) {
	// Numbers must not come from a counter.
	a, err := Generate()
	require.NoError(t, err)
	sequential := true
	prev := a
	for i := 0; i < 10; i++ {
		n, err := Generate()
		require.NoError(t, err)
		if n != prev+1 {
			sequential = false
		}
		prev = n
	}
	assert.False(t, sequential)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Min))
	assert.True(t, IsValid(Max-1))
	assert.False(t, IsValid(Min-1))
	assert.False(t, IsValid(Max))
	assert.False(t, IsValid(0))
	assert.False(t, IsValid(-123456789))
}
