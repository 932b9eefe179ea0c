package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picgrid/grid"
	"picgrid/palette"
)

func testDoc(t *testing.T) *grid.Document {
	t.Helper()
	pal, err := palette.New("test", []palette.Color{
		{Name: "red", R: 200, G: 30, B: 40},
		{Name: "blue", R: 30, G: 60, B: 200},
	})
	require.NoError(t, err)

	d, err := grid.New(pal, 16)
	require.NoError(t, err)
	return d
}

func TestImageArguments(t *testing.T) {
	_, err := Image(nil, 10)
	assert.Error(t, err)

	d := testDoc(t)
	_, err = Image(d, 0)
	assert.Error(t, err)
	_, err = Image(d, -3)
	assert.Error(t, err)
}

func TestImageDimensions(t *testing.T) {
	d := testDoc(t)
	img, err := Image(d, 10)
	require.NoError(t, err)

	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestEmptyGridIsBackground(t *testing.T) {
	d := testDoc(t)
	img, err := Image(d, 4)
	require.NoError(t, err)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			require.Equal(t, Background, img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// studBlend mirrors the documented overlay formula:
// out = (src*a + dst*(255-a)) / 255 with a white source.
func studBlend(c uint8) uint8 {
	return uint8((255*StudAlpha + int(c)*(255-StudAlpha)) / 255)
}

func TestFilledCellPixels(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.SetCell(0, 0, 0))

	// cellPixelSize 10: stud radius 2 around (5,5), 1px border.
	img, err := Image(d, 10)
	require.NoError(t, err)

	red := d.Palette().Color(0)

	// Border pixels.
	assert.Equal(t, Border, img.RGBAAt(0, 0))
	assert.Equal(t, Border, img.RGBAAt(9, 0))
	assert.Equal(t, Border, img.RGBAAt(0, 9))
	assert.Equal(t, Border, img.RGBAAt(9, 9))
	assert.Equal(t, Border, img.RGBAAt(4, 0))
	assert.Equal(t, Border, img.RGBAAt(0, 4))

	// Flat interior, outside the stud.
	flat := color.RGBA{R: red.R, G: red.G, B: red.B, A: 0xff}
	assert.Equal(t, flat, img.RGBAAt(1, 1))
	assert.Equal(t, flat, img.RGBAAt(8, 8))
	assert.Equal(t, flat, img.RGBAAt(2, 5))

	// Stud center blends white at StudAlpha over the fill.
	want := color.RGBA{R: studBlend(red.R), G: studBlend(red.G), B: studBlend(red.B), A: 0xff}
	assert.Equal(t, want, img.RGBAAt(5, 5))
	assert.Equal(t, want, img.RGBAAt(5, 4))

	// Neighboring cell stays background.
	assert.Equal(t, Background, img.RGBAAt(15, 15))
	assert.Equal(t, Background, img.RGBAAt(5, 15))
}

func TestRenderIsDeterministic(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.SetCell(3, 4, 1))
	require.NoError(t, d.SetCell(7, 7, 0))

	a, err := Image(d, 12)
	require.NoError(t, err)
	b, err := Image(d, 12)
	require.NoError(t, err)

	assert.Equal(t, a.Pix, b.Pix)
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.SetCell(0, 0, 1))
	before := d.Cells()

	_, err := Image(d, 8)
	require.NoError(t, err)

	assert.Equal(t, before, d.Cells())
	// And rendering consumed no history.
	require.True(t, d.Undo())
	assert.False(t, d.Undo())
}
