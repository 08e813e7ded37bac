package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencePushBack(t *testing.T) {
	t.Parallel()

	seq := NewSequence[string, int]()
	require.NoError(t, seq.PushBack("a", 1))
	require.NoError(t, seq.PushBack("b", 2))

	err := seq.PushBack("a", 3)
	require.ErrorIs(t, err, ErrKeyExists)

	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, []string{"a", "b"}, seq.Keys())

	v, ok := seq.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSequencePopBack(t *testing.T) {
	t.Parallel()

	seq := NewSequence[string, int]()

	_, _, ok := seq.PopBack()
	assert.False(t, ok)
	assert.Zero(t, seq.Len())

	for i, k := range []string{"a", "b", "c"} {
		require.NoError(t, seq.PushBack(k, i))
	}

	k, v, ok := seq.PopBack()
	assert.True(t, ok)
	assert.Equal(t, "c", k)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a", "b"}, seq.Keys())
	assert.False(t, seq.Has("c"))

	seq.PopBack()
	seq.PopBack()
	_, _, ok = seq.PopBack()
	assert.False(t, ok)
	assert.Empty(t, seq.Keys())
}

func TestSequenceRemove(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		remove   string
		expected []string
	}{
		"head":   {remove: "a", expected: []string{"b", "c"}},
		"middle": {remove: "b", expected: []string{"a", "c"}},
		"tail":   {remove: "c", expected: []string{"a", "b"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			seq := NewSequence[string, int]()
			for i, k := range []string{"a", "b", "c"} {
				require.NoError(t, seq.PushBack(k, i))
			}

			_, err := seq.Remove(tc.remove)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, seq.Keys())
			assert.Equal(t, 2, seq.Len())
		})
	}
}

func TestSequenceRemoveUnknown(t *testing.T) {
	t.Parallel()

	seq := NewSequence[string, int]()
	require.NoError(t, seq.PushBack("a", 1))

	_, err := seq.Remove("z")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, seq.Len())
}

func TestSequenceReusesSlots(t *testing.T) {
	t.Parallel()

	seq := NewSequence[string, int]()
	require.NoError(t, seq.PushBack("a", 1))
	require.NoError(t, seq.PushBack("b", 2))
	_, err := seq.Remove("a")
	require.NoError(t, err)
	require.NoError(t, seq.PushBack("c", 3))

	assert.Len(t, seq.slots, 2)
	assert.Equal(t, []string{"b", "c"}, seq.Keys())

	// a removed key can be pushed again and lands at the tail
	require.NoError(t, seq.PushBack("a", 4))
	assert.Equal(t, []string{"b", "c", "a"}, seq.Keys())
}

func TestSequenceEachStops(t *testing.T) {
	t.Parallel()

	seq := NewSequence[int, int]()
	for i := range 5 {
		require.NoError(t, seq.PushBack(i, i*10))
	}

	got := []int{}
	seq.Each(func(k, v int) bool {
		got = append(got, v)

		return k < 2
	})
	assert.Equal(t, []int{0, 10, 20}, got)
}

func TestSequenceReset(t *testing.T) {
	t.Parallel()

	seq := NewSequence[string, int]()
	require.NoError(t, seq.PushBack("a", 1))
	seq.Reset()

	assert.Zero(t, seq.Len())
	assert.Empty(t, seq.Keys())
	require.NoError(t, seq.PushBack("a", 1))
	assert.Equal(t, []string{"a"}, seq.Keys())
}
