package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	var o Optional[string] = Some[string]{Value: "x"}
	assert.False(t, o.IsNone())
	assert.Equal(t, "x", o.Get())

	var received string
	o.(Some[string]).Some(&received)
	assert.Equal(t, "x", received)

	o = None[string]{}
	assert.True(t, o.IsNone())
	assert.Empty(t, o.Get())

	assert.True(t, Of(0, false).IsNone())
	assert.Equal(t, 7, Of(7, true).Get())
}
