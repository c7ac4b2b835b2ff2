package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestKeep_AcceptsAnyValue verifies Keep is callable with arbitrary values,
// including nil, and has no observable side effect of its own.
func TestKeep_AcceptsAnyValue(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Keep(nil) })
	assert.NotPanics(t, func() { Keep(42) })
	assert.NotPanics(t, func() { Keep(&struct{}{}) })
}

// TestKeep_Deferred verifies the deferred form compiles and the pinned
// value is still usable throughout the scope. The liveness extension
// itself is a collector property and is not asserted here.
func TestKeep_Deferred(t *testing.T) {
	t.Parallel()

	v := new(int)
	*v = 7

	func() {
		defer Keep(v)
		assert.Equal(t, 7, *v)
	}()
}
