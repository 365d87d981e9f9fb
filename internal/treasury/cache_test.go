package treasury

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	terminals map[uint64]string
	calls     int
}

func (d *countingDirectory) ResolveTerminal(treasuryId uint64) (string, error) {
	d.calls++
	return d.terminals[treasuryId], nil
}

func TestCachedDirectory(t *testing.T) {
	inner := &countingDirectory{terminals: map[uint64]string{7: "0xc66a0d8e0d9f6e8e3c0a4b8e9d1f2a3b4c5d6e7f"}}
	directory := NewCachedDirectory(inner, time.Minute)

	for i := 0; i < 3; i++ {
		terminal, err := directory.ResolveTerminal(7)
		require.NoError(t, err)
		assert.Equal(t, "0xc66a0d8e0d9f6e8e3c0a4b8e9d1f2a3b4c5d6e7f", terminal)
	}

	assert.Equal(t, 1, inner.calls)
}

func TestCachedDirectory_MissesNotCached(t *testing.T) {
	inner := &countingDirectory{terminals: map[uint64]string{}}
	directory := NewCachedDirectory(inner, time.Minute)

	for i := 0; i < 2; i++ {
		terminal, err := directory.ResolveTerminal(9)
		require.NoError(t, err)
		assert.Equal(t, "", terminal)
	}

	// A terminal can be registered at any time; unresolved ids go back to
	// the inner directory.
	assert.Equal(t, 2, inner.calls)
}
