package plot

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EncodesPNG(t *testing.T) {
	points := []Point{
		{At: 0, Offset: 0},
		{At: 100 * time.Millisecond, Offset: -200},
		{At: 200 * time.Millisecond, Offset: -80, Busy: true},
		{At: 500 * time.Millisecond, Offset: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, points, Options{Title: "refresh", Guides: []int{-80}}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, img.Bounds().Dx())
	assert.Equal(t, defaultHeight, img.Bounds().Dy())
}

func TestRender_DrawsTrace(t *testing.T) {
	points := []Point{{At: 0, Offset: -100}, {At: time.Second, Offset: 0}}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, points, Options{Width: 200, Height: 100}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	// The first sample sits at the top-left corner of the plot area.
	r, g, b, _ := img.At(margin, margin).RGBA()
	tr, tg, tb, _ := traceColor.RGBA()
	assert.Equal(t, []uint32{tr, tg, tb}, []uint32{r, g, b})
}

func TestRender_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, []Point{{Offset: 0}}, Options{}))
}

func TestRender_NoPoints(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, nil, Options{}), ErrNoPoints)
	assert.Zero(t, buf.Len())
}
