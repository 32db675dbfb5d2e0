package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func starImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	// a bright 10x10 block in the top-left quarter
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	return img
}

func TestLoadBackground(t *testing.T) {
	path := writePNG(t, starImage())

	img, err := LoadBackground(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
}

func TestLoadBackgroundEmptyPath(t *testing.T) {
	img, err := LoadBackground("")
	assert.NoError(t, err)
	assert.Nil(t, img)
}

func TestLoadBackgroundMissing(t *testing.T) {
	_, err := LoadBackground(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBackgroundGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := LoadBackground(path)
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	dst := Fit(starImage(), 80, 20)
	assert.Equal(t, image.Rect(0, 0, 80, 20), dst.Bounds())
	assert.Greater(t, Luminance(dst.RGBAAt(2, 1)), 0.9)
	assert.Less(t, Luminance(dst.RGBAAt(70, 18)), 0.1)
}

func TestFitNil(t *testing.T) {
	dst := Fit(nil, 4, 4)
	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(3, 3))
}

func TestStarField(t *testing.T) {
	pts := StarField(starImage(), 4, 4, 0.5)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.True(t, p.X < 2 && p.Y < 2, "star at %v outside bright corner", p)
	}
	assert.Nil(t, StarField(nil, 4, 4, 0.5))
}
