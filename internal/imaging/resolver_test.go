package imaging

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cwc-viewer/internal/models"
	"cwc-viewer/internal/stadiums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestResolveScalesImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "sofi_stadium.jpg"), 64, 48)

	r := NewResolver(dir, nil)
	h, err := r.Resolve(context.Background(), models.Venue{City: "Los Angeles", ImageReference: "sofi_stadium.jpg"})
	require.NoError(t, err)
	require.NotNil(t, h.Image)

	assert.Equal(t, "sofi_stadium.jpg", h.Reference)
	assert.Equal(t, DisplayWidth, h.Image.Bounds().Dx())
	assert.Equal(t, DisplayHeight, h.Image.Bounds().Dy())

	h.Close()
	assert.Nil(t, h.Image)
}

func TestResolveUnavailable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.jpg"), []byte("not an image"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.jpg"), nil, 0o644))

	tests := []struct {
		name string
		ref  string
	}{
		{name: "missing file", ref: "metlife.jpg"},
		{name: "undecodable file", ref: "corrupt.jpg"},
		{name: "empty file", ref: "empty.jpg"},
		{name: "no reference", ref: ""},
	}

	r := NewResolver(dir, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := r.Resolve(context.Background(), models.Venue{City: "New York", ImageReference: tt.ref})
			assert.Nil(t, h)
			require.ErrorIs(t, err, ErrImageUnavailable)
			assert.False(t, errors.Is(err, stadiums.ErrNotFound))

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.ref, unavailable.Reference)
		})
	}
}

func TestResolveMissingFileKeepsCause(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)

	_, err := r.Resolve(context.Background(), models.Venue{ImageReference: "att_stadium.jpg"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(t.TempDir(), nil).Resolve(ctx, models.Venue{ImageReference: "x.jpg"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNilHandleClose(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Close)
}
