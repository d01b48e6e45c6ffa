//go:build windows

package icon

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procSHGetFileInfoW     = shell32.NewProc("SHGetFileInfoW")
	procGetIconInfo        = user32.NewProc("GetIconInfo")
	procDestroyIcon        = user32.NewProc("DestroyIcon")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procGetObjectW         = gdi32.NewProc("GetObjectW")
	procGetDIBits          = gdi32.NewProc("GetDIBits")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
)

const (
	shgfiIcon      = 0x000000100
	shgfiLargeIcon = 0x000000000
	shgfiSmallIcon = 0x000000001

	biRGB        = 0
	dibRGBColors = 0
)

type shFileInfo struct {
	HIcon         windows.Handle
	IIcon         int32
	DwAttributes  uint32
	SzDisplayName [260]uint16
	SzTypeName    [80]uint16
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

type gdiBitmap struct {
	Type       int32
	Width      int32
	Height     int32
	WidthBytes int32
	Planes     uint16
	BitsPixel  uint16
	Bits       uintptr
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

// extract asks the shell for the file-type icon and copies its color bitmap
// out through a memory device context.
//
// Handle discipline: every native handle acquired here is released before
// return on every path, in reverse acquisition order (memory DC, screen DC,
// color bitmap, mask bitmap, icon). The deferred releases below are
// registered in acquisition order, so the runtime unwinds them exactly that
// way.
func extract(path string, size int) (*image.RGBA, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, ErrPathNotFound
	}

	flags := uintptr(shgfiIcon | shgfiLargeIcon)
	if size <= SmallSize {
		flags = shgfiIcon | shgfiSmallIcon
	}

	var fi shFileInfo
	ret, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		0,
		uintptr(unsafe.Pointer(&fi)),
		unsafe.Sizeof(fi),
		flags,
	)
	if ret == 0 || fi.HIcon == 0 {
		return nil, ErrShellQuery
	}
	defer procDestroyIcon.Call(uintptr(fi.HIcon))

	var ii iconInfo
	if r, _, _ := procGetIconInfo.Call(uintptr(fi.HIcon), uintptr(unsafe.Pointer(&ii))); r == 0 {
		return nil, ErrShellQuery
	}
	if ii.HbmMask != 0 {
		defer procDeleteObject.Call(uintptr(ii.HbmMask))
	}
	if ii.HbmColor == 0 {
		// Monochrome icon: only a mask bitmap exists.
		return nil, ErrNoColorBitmap
	}
	defer procDeleteObject.Call(uintptr(ii.HbmColor))

	var bm gdiBitmap
	if r, _, _ := procGetObjectW.Call(uintptr(ii.HbmColor), unsafe.Sizeof(bm), uintptr(unsafe.Pointer(&bm))); r == 0 {
		return nil, ErrShellQuery
	}
	width, height := int(bm.Width), int(bm.Height)
	if width <= 0 || height <= 0 {
		return nil, ErrNoColorBitmap
	}

	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return nil, ErrPixelTransfer
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return nil, ErrPixelTransfer
	}
	defer procDeleteDC.Call(memDC)

	// Negative height requests top-down row order; 32bpp uncompressed gives
	// one BGRA quad per pixel.
	bi := bitmapInfo{Header: bitmapInfoHeader{
		Size:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		Width:       int32(width),
		Height:      -int32(height),
		Planes:      1,
		BitCount:    32,
		Compression: biRGB,
	}}
	buf := make([]byte, width*height*4)
	lines, _, _ := procGetDIBits.Call(
		memDC,
		uintptr(ii.HbmColor),
		0,
		uintptr(height),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&bi)),
		dibRGBColors,
	)
	if lines == 0 {
		return nil, ErrPixelTransfer
	}

	return resample(fromBGRA(buf, width, height), size), nil
}
