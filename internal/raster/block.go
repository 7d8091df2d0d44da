package raster

import (
	"image"
	"image/color"
)

// arm flags for box-drawing runes.
const (
	armLeft = 1 << iota
	armRight
	armUp
	armDown
)

// boxArms maps the light and heavy box-drawing runes to their line arms.
// Heavy and double variants render the same as light; weight distinctions
// are below the fidelity of the reference backend.
var boxArms = map[rune]int{
	'─': armLeft | armRight, '━': armLeft | armRight,
	'│': armUp | armDown, '┃': armUp | armDown,
	'┌': armRight | armDown, '┏': armRight | armDown, '╔': armRight | armDown, '╭': armRight | armDown,
	'┐': armLeft | armDown, '┓': armLeft | armDown, '╗': armLeft | armDown, '╮': armLeft | armDown,
	'└': armRight | armUp, '┗': armRight | armUp, '╚': armRight | armUp, '╰': armRight | armUp,
	'┘': armLeft | armUp, '┛': armLeft | armUp, '╝': armLeft | armUp, '╯': armLeft | armUp,
	'├': armRight | armUp | armDown, '┣': armRight | armUp | armDown, '╠': armRight | armUp | armDown,
	'┤': armLeft | armUp | armDown, '┫': armLeft | armUp | armDown, '╣': armLeft | armUp | armDown,
	'┬': armLeft | armRight | armDown, '┳': armLeft | armRight | armDown, '╦': armLeft | armRight | armDown,
	'┴': armLeft | armRight | armUp, '┻': armLeft | armRight | armUp, '╩': armLeft | armRight | armUp,
	'┼': armLeft | armRight | armUp | armDown, '╋': armLeft | armRight | armUp | armDown, '╬': armLeft | armRight | armUp | armDown,
	'═': armLeft | armRight, '║': armUp | armDown,
}

// drawBlock renders a box-drawing or block-element rune as coverage into
// the atlas rectangle.
func drawBlock(atlas *image.Alpha, rect image.Rectangle, block rune) {
	w := rect.Dx()
	h := rect.Dy()
	opaque := color.Alpha{A: 0xff}

	fill := func(x0, y0, x1, y1 int, a color.Alpha) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				atlas.SetAlpha(rect.Min.X+x, rect.Min.Y+y, a)
			}
		}
	}

	switch {
	case block == '█':
		fill(0, 0, w, h, opaque)

	case block == '▀':
		fill(0, 0, w, h/2, opaque)

	case block >= '▁' && block <= '▇':
		// Lower one-eighth through seven-eighths blocks.
		frac := int(block-'▁') + 1
		fill(0, h-h*frac/8, w, h, opaque)

	case block == '▌':
		fill(0, 0, w/2, h, opaque)

	case block >= '▉' && block <= '▏':
		// Left seven-eighths down to one-eighth blocks.
		frac := 7 - int(block-'▉')
		fill(0, 0, w*frac/8, h, opaque)

	case block == '▐':
		fill(w/2, 0, w, h, opaque)

	case block == '░':
		fill(0, 0, w, h, color.Alpha{A: 0x40})
	case block == '▒':
		fill(0, 0, w, h, color.Alpha{A: 0x80})
	case block == '▓':
		fill(0, 0, w, h, color.Alpha{A: 0xc0})

	default:
		arms, ok := boxArms[block]
		if !ok {
			// Unknown rune in the block range: render solid so it is at
			// least visible.
			fill(0, 0, w, h, opaque)
			return
		}
		cx := w / 2
		cy := h / 2
		if arms&armLeft != 0 {
			fill(0, cy, cx+1, cy+1, opaque)
		}
		if arms&armRight != 0 {
			fill(cx, cy, w, cy+1, opaque)
		}
		if arms&armUp != 0 {
			fill(cx, 0, cx+1, cy+1, opaque)
		}
		if arms&armDown != 0 {
			fill(cx, cy, cx+1, h, opaque)
		}
	}
}
