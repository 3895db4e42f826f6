package theme

import "strings"

// PhotoMode governs whether and how the personal photo is drawn.
type PhotoMode string

const (
	PhotoVisible     PhotoMode = "visible"
	PhotoHidden      PhotoMode = "hidden"
	PhotoConditional PhotoMode = "conditional"
	PhotoSquare      PhotoMode = "square"
)

// PhotoShape is the crop applied to a rendered photo.
type PhotoShape string

const (
	ShapeRound  PhotoShape = "round"
	ShapeSquare PhotoShape = "square"
)

// ParsePhotoMode returns the mode for raw and whether it was recognised.
func ParsePhotoMode(raw string) (PhotoMode, bool) {
	switch m := PhotoMode(strings.ToLower(strings.TrimSpace(raw))); m {
	case PhotoVisible, PhotoHidden, PhotoConditional, PhotoSquare:
		return m, true
	default:
		return PhotoConditional, false
	}
}
