package input

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Region describes the reserved abort area: a square of SizePx pixels in one
// corner of the primary display. Moving the pointer there aborts a run.
type Region struct {
	Corner string // top-left, top-right, bottom-left, bottom-right
	SizePx int
}

// Failsafe checks whether the pointer has entered the reserved region. It is
// polled on the run loop's delay cadence; cursor read errors are treated as
// "not triggered" so a missing backend never aborts a run by itself.
type Failsafe struct {
	region Region
	cursor CursorSource
	bounds func() (image.Rectangle, bool)
}

// NewFailsafe builds a failsafe against the primary display.
func NewFailsafe(region Region, cursor CursorSource) *Failsafe {
	if region.SizePx <= 0 {
		region.SizePx = 10
	}
	return &Failsafe{
		region: region,
		cursor: cursor,
		bounds: primaryDisplayBounds,
	}
}

// Triggered reports whether the pointer is currently inside the region.
func (f *Failsafe) Triggered() bool {
	x, y, err := f.cursor.CursorPosition()
	if err != nil {
		return false
	}
	display, ok := f.bounds()
	if !ok {
		return false
	}
	return image.Pt(x, y).In(f.regionRect(display))
}

// regionRect resolves the configured corner against the display bounds.
// Unknown corner names fall back to top-left, matching the documented
// default.
func (f *Failsafe) regionRect(display image.Rectangle) image.Rectangle {
	size := f.region.SizePx

	switch f.region.Corner {
	case "top-right":
		return image.Rect(display.Max.X-size, display.Min.Y, display.Max.X, display.Min.Y+size)
	case "bottom-left":
		return image.Rect(display.Min.X, display.Max.Y-size, display.Min.X+size, display.Max.Y)
	case "bottom-right":
		return image.Rect(display.Max.X-size, display.Max.Y-size, display.Max.X, display.Max.Y)
	default:
		return image.Rect(display.Min.X, display.Min.Y, display.Min.X+size, display.Min.Y+size)
	}
}

func primaryDisplayBounds() (image.Rectangle, bool) {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}, false
	}
	return screenshot.GetDisplayBounds(0), true
}
