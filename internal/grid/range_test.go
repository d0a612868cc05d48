package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStartAndCount(t *testing.T) {
	r := FromStartAndCount(5, 3)
	assert.Equal(t, FromBounds(5, 7), r)

	count, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestStartValue_DefaultsToZero(t *testing.T) {
	assert.Equal(t, int64(0), Unbounded().StartValue())
	assert.Equal(t, int64(0), EndingAt(9).StartValue())
	assert.Equal(t, int64(4), StartingAt(4).StartValue())
}

func TestEndValue_UnboundedFails(t *testing.T) {
	_, err := Unbounded().EndValue()
	assert.ErrorIs(t, err, ErrEndIndexUndefined)

	_, err = StartingAt(3).EndValue()
	assert.ErrorIs(t, err, ErrEndIndexUndefined)

	end, err := FromBounds(3, 8).EndValue()
	require.NoError(t, err)
	assert.Equal(t, int64(8), end)
}

func TestCount_UnboundedFails(t *testing.T) {
	_, err := StartingAt(3).Count()
	assert.ErrorIs(t, err, ErrEndIndexUndefined)
}

func TestIndices(t *testing.T) {
	indices, err := FromBounds(2, 5).Indices()
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, indices)

	single, err := Single(7).Indices()
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, single)

	_, err = Unbounded().Indices()
	assert.ErrorIs(t, err, ErrEndIndexUndefined)
}

func TestNextWithCount(t *testing.T) {
	r := FromBounds(0, 1)

	next, err := r.NextWithCount(7)
	require.NoError(t, err)
	assert.Equal(t, FromBounds(2, 8), next)

	single, err := next.Next()
	require.NoError(t, err)
	assert.Equal(t, Single(9), single)

	_, err = StartingAt(0).NextWithCount(7)
	assert.ErrorIs(t, err, ErrEndIndexUndefined)
}

func TestSubranges_AreRelativeToStart(t *testing.T) {
	r := FromBounds(10, 30)

	assert.Equal(t, FromBounds(12, 14), r.SubrangeBounds(2, 4))
	assert.Equal(t, FromBounds(13, 17), r.SubrangeWithCount(3, 5))
	assert.Equal(t, Single(16), r.SubrangeSingle(6))
}

func TestUnion_Adjacent(t *testing.T) {
	r, err := Union(Single(4), Single(5))
	require.NoError(t, err)
	assert.Equal(t, FromBounds(4, 5), r)

	r, err = Union(FromBounds(0, 3), FromBounds(4, 9))
	require.NoError(t, err)
	assert.Equal(t, FromBounds(0, 9), r)
}

func TestUnion_NotAdjacentFails(t *testing.T) {
	_, err := Union(Single(0), Single(2))
	assert.ErrorIs(t, err, ErrRangesNotAdjacent)

	// Overlap is not adjacency either.
	_, err = Union(FromBounds(0, 4), FromBounds(4, 9))
	assert.ErrorIs(t, err, ErrRangesNotAdjacent)
}

func TestUnion_UnboundedEndFails(t *testing.T) {
	_, err := Union(StartingAt(0), Single(3))
	assert.ErrorIs(t, err, ErrEndIndexUndefined)
}

func TestUnionAll(t *testing.T) {
	r, err := UnionAll(FromBounds(0, 1), FromBounds(2, 8), Single(9), Single(10))
	require.NoError(t, err)
	assert.Equal(t, FromBounds(0, 10), r)

	_, err = UnionAll(FromBounds(0, 1), FromBounds(3, 8))
	assert.ErrorIs(t, err, ErrRangesNotAdjacent)

	_, err = UnionAll()
	assert.Error(t, err)

	r, err = UnionAll(FromBounds(2, 4))
	require.NoError(t, err)
	assert.Equal(t, FromBounds(2, 4), r)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[3..7]", FromBounds(3, 7).String())
	assert.Equal(t, "[3..]", StartingAt(3).String())
	assert.Equal(t, "[..]", Unbounded().String())
}
