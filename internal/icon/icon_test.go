package icon

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMissingPath(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing", "app.exe"), 32)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestExtractInvalidSize(t *testing.T) {
	_, err := Extract("whatever", 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPathNotFound)

	_, err = Extract("whatever", -3)
	require.Error(t, err)
}

func TestDefaultIsFlatGraySquare(t *testing.T) {
	for _, size := range []int{16, 32, 48} {
		img := Default(size)
		require.Equal(t, size, img.Bounds().Dx())
		require.Equal(t, size, img.Bounds().Dy())
		for i := 0; i < len(img.Pix); i += 4 {
			require.Equal(t, []uint8{128, 128, 128, 255}, []uint8(img.Pix[i:i+4]))
		}
	}
}

func TestPlaceholderDimensionsAndFill(t *testing.T) {
	img := Placeholder(`C:\Apps\firefox.exe`, 32)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	// Corners carry the background fill.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(100), r>>8)
	assert.Equal(t, uint32(149), g>>8)
	assert.Equal(t, uint32(237), b>>8)

	// The letter annotation leaves at least one white pixel.
	white := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 && img.Pix[i+1] == 255 && img.Pix[i+2] == 255 {
			white++
		}
	}
	assert.Greater(t, white, 0)
}

func TestPlaceholderLetter(t *testing.T) {
	assert.Equal(t, "F", placeholderLetter(`C:\Apps\firefox.exe`))
	assert.Equal(t, "7", placeholderLetter("7zip.exe"))
	assert.Equal(t, "N", placeholderLetter("notes"))
	assert.Equal(t, "?", placeholderLetter("...exe"))
}

func TestFromBGRASwapsChannels(t *testing.T) {
	// One blue-ish pixel, one red-ish pixel, in BGRA byte order.
	buf := []byte{
		200, 10, 20, 255, // B=200 G=10 R=20
		5, 60, 180, 128, // B=5 G=60 R=180
	}
	img := fromBGRA(buf, 2, 1)
	assert.Equal(t, []uint8{20, 10, 200, 255}, []uint8(img.Pix[0:4]))
	assert.Equal(t, []uint8{180, 60, 5, 128}, []uint8(img.Pix[4:8]))
}

func TestResample(t *testing.T) {
	src := Default(32)
	dst := resample(src, 16)
	assert.Equal(t, 16, dst.Bounds().Dx())
	assert.Equal(t, 16, dst.Bounds().Dy())

	// Already at target size: same buffer comes back untouched.
	assert.Same(t, src, resample(src, 32))
}

func TestExtractOrFallbackNeverNil(t *testing.T) {
	img := ExtractOrFallback(filepath.Join(t.TempDir(), "gone.exe"), 24)
	require.NotNil(t, img)
	assert.Equal(t, 24, img.Bounds().Dx())
}

func TestCacheMemoizes(t *testing.T) {
	var calls atomic.Int32
	c := NewCache()
	c.extractFn = func(path string, size int) (*image.RGBA, error) {
		calls.Add(1)
		return Default(size), nil
	}

	first := c.Get("a.exe", 32)
	second := c.Get("a.exe", 32)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	// Different size is a different entry.
	c.Get("a.exe", 16)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestCachePlaceholderOnFailure(t *testing.T) {
	var calls atomic.Int32
	c := NewCache()
	c.extractFn = func(path string, size int) (*image.RGBA, error) {
		calls.Add(1)
		return nil, ErrShellQuery
	}

	img := c.Get("b.exe", 32)
	require.NotNil(t, img)
	assert.Equal(t, 32, img.Bounds().Dx())

	// Failure result is cached too.
	c.Get("b.exe", 32)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache()
	c.extractFn = func(path string, size int) (*image.RGBA, error) {
		return Default(size), nil
	}
	c.Get("a.exe", 16)
	c.Get("a.exe", 32)
	c.Get("b.exe", 32)

	c.Invalidate("a.exe")
	assert.Equal(t, 1, c.Len())
}

func TestCacheWarm(t *testing.T) {
	c := NewCache()
	c.extractFn = func(path string, size int) (*image.RGBA, error) {
		return Default(size), nil
	}

	paths := []string{"a.exe", "b.exe", "c.exe", "d.exe", "e.exe"}
	err := c.Warm(context.Background(), paths, 32, 3)
	require.NoError(t, err)
	assert.Equal(t, len(paths), c.Len())
}

func TestCacheWarmCanceled(t *testing.T) {
	c := NewCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Warm(ctx, []string{"a.exe"}, 32, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractOnRealFile(t *testing.T) {
	// An existing ordinary file: either a real icon comes back at the
	// requested size or a clean taxonomy error, never anything else.
	path := filepath.Join(t.TempDir(), "sample.exe")
	require.NoError(t, os.WriteFile(path, []byte("not a real binary"), 0o644))

	img, err := Extract(path, 32)
	if err != nil {
		ok := errors.Is(err, ErrShellQuery) ||
			errors.Is(err, ErrNoColorBitmap) ||
			errors.Is(err, ErrPixelTransfer)
		assert.True(t, ok, "unexpected error: %v", err)
		return
	}
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}
