package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Cases(t *testing.T) {
	n := Next(42)
	assert.Equal(t, KindNext, n.Kind())
	assert.Equal(t, 42, n.Value())
	assert.NoError(t, n.Err())
	assert.False(t, n.IsTerminating())

	boom := errors.New("boom")
	f := Failed[int](boom)
	assert.Equal(t, KindFailed, f.Kind())
	assert.ErrorIs(t, f.Err(), boom)
	assert.True(t, f.IsTerminating())

	c := Completed[int]()
	assert.Equal(t, KindCompleted, c.Kind())
	assert.NoError(t, c.Err())
	assert.True(t, c.IsTerminating())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "next(7)", Next(7).String())
	assert.Equal(t, "failed(boom)", Failed[int](errors.New("boom")).String())
	assert.Equal(t, "completed", Completed[int]().String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "next", KindNext.String())
	assert.Equal(t, "failed", KindFailed.String())
	assert.Equal(t, "completed", KindCompleted.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
