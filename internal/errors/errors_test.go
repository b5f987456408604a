package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := New("sentinel")
	wrapped := Wrapf(sentinel, "load %s", "task")

	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "load task: sentinel", wrapped.Error())
	assert.False(t, Is(nil, sentinel))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing to wrap"))
	assert.NoError(t, WithStack(nil))
}
