package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flipbook/internal/book"
)

func TestSceneGeometry(t *testing.T) {
	s := newScene(4, 16)

	assert.Equal(t, 6*bandRows*16.0, s.ScrollHeight())
	assert.Equal(t, s.ScrollHeight()-bandRows*16, s.maxScroll())

	s.SmoothScrollTo(-10)
	assert.Equal(t, 0.0, s.scrollTarget)
	s.SmoothScrollTo(1e9)
	assert.Equal(t, s.maxScroll(), s.scrollTarget)
}

func TestSceneScrollByClampsAndCancelsAnimation(t *testing.T) {
	s := newScene(2, 10)
	s.SmoothScrollTo(30)

	assert.True(t, s.scrollBy(5))
	assert.Equal(t, 5.0, s.scrollTop)
	assert.Equal(t, 5.0, s.scrollTarget)

	assert.True(t, s.scrollBy(-50))
	assert.Equal(t, 0.0, s.scrollTop)
	assert.False(t, s.scrollBy(-1))
}

func TestSceneSpringsSettleOnTargets(t *testing.T) {
	s := newScene(3, 16)
	r, err := book.NewRenderer(s.targets(), true)
	require.NoError(t, err)
	r.Sync(0)
	s.snap()
	require.False(t, s.animating())

	r.Apply(0, 1)
	require.True(t, s.animating())

	leaf, p, ok := s.turning()
	require.True(t, ok)
	assert.Equal(t, 0, leaf)
	assert.Equal(t, 0.0, p)

	var frames int
	for !s.step() {
		frames++
		require.Less(t, frames, 600, "springs did not settle")
	}
	assert.False(t, s.animating())
	assert.Equal(t, 1.0, s.leaves[0].flip)
	assert.Equal(t, 0.5, s.coverX)
	assert.Equal(t, s.scrollTarget, s.scrollTop)

	_, _, ok = s.turning()
	assert.False(t, ok)
}

func TestSceneTopPicksHighestStackOnEachSide(t *testing.T) {
	s := newScene(4, 16)
	r, err := book.NewRenderer(s.targets(), false)
	require.NoError(t, err)

	r.Sync(2)
	assert.Equal(t, 1, s.top(book.Flipped))
	assert.Equal(t, 2, s.top(book.Front))

	r.Sync(0)
	assert.Equal(t, -1, s.top(book.Flipped))
	r.Sync(4)
	assert.Equal(t, -1, s.top(book.Front))
}
