package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := make(Set[string])
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("a"))

	set.Add("a")
	set.Add("a")
	set.Add("b")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))

	set.Remove("a")
	assert.False(t, set.Contains("a"))
	assert.Equal(t, 1, set.Len())

	// Removing an absent element is a no-op.
	set.Remove("missing")
	assert.Equal(t, 1, set.Len())
}
