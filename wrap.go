package box

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// wrapCells word-wraps a text run into lines of shaped cells, none wider
// than maxWidth except where a single grapheme cluster alone exceeds it.
//
// Words are split on inclusive whitespace boundaries (trailing spaces stay
// attached to their word) and shaped independently. A word that cannot fit
// on a line of its own falls back to grapheme-cluster-level breaking; every
// iteration there advances by at least one cluster, so degenerate widths
// terminate with one cluster per line rather than looping.
//
// Empty input yields zero lines.
func wrapCells(shaper Shaper, metrics CellMetrics, text string, maxWidth float64) ([][]ShapedCell, error) {
	if text == "" {
		return nil, nil
	}

	var lines [][]ShapedCell
	var line []ShapedCell
	lineWidth := 0.0

	flush := func() {
		lines = append(lines, line)
		line = nil
		lineWidth = 0
	}

	for _, word := range splitInclusive(text) {
		cells, err := shapeCells(shaper, metrics, word)
		if err != nil {
			return nil, err
		}
		width := cellsWidth(cells)

		if len(line) > 0 && lineWidth+width > maxWidth {
			flush()
		}

		if width > maxWidth {
			// The word alone overflows: break at grapheme clusters,
			// shaping each cluster independently.
			gr := uniseg.NewGraphemes(word)
			for gr.Next() {
				cluster, err := shapeCells(shaper, metrics, gr.Str())
				if err != nil {
					return nil, err
				}
				cw := cellsWidth(cluster)
				if len(line) > 0 && lineWidth+cw > maxWidth {
					flush()
				}
				line = append(line, cluster...)
				lineWidth += cw
			}
			continue
		}

		line = append(line, cells...)
		lineWidth += width
	}

	if len(line) > 0 {
		flush()
	}

	return lines, nil
}

// WrapText word-wraps text into lines of shaped cells no wider than
// maxWidth pixels. See wrapCells for the breaking rules.
func WrapText(shaper Shaper, metrics CellMetrics, text string, maxWidth float64) ([][]ShapedCell, error) {
	return wrapCells(shaper, metrics, text, maxWidth)
}

// TruncateToLines returns the longest prefix of text, as whole words joined
// by single spaces, that wraps into at most maxLines lines at the given
// width. Used to produce "show more" previews: the result wrapped again is
// guaranteed not to exceed maxLines.
func TruncateToLines(shaper Shaper, metrics CellMetrics, text string, maxWidth float64, maxLines int) (string, error) {
	if maxLines <= 0 {
		return "", nil
	}

	words := strings.Fields(text)
	kept := ""
	for _, word := range words {
		candidate := word
		if kept != "" {
			candidate = kept + " " + word
		}
		lines, err := wrapCells(shaper, metrics, candidate, maxWidth)
		if err != nil {
			return "", err
		}
		if len(lines) > maxLines {
			break
		}
		kept = candidate
	}

	return kept, nil
}

// splitInclusive splits text on whitespace boundaries, keeping each run of
// whitespace attached to the word that precedes it. A leading whitespace
// run forms its own word.
func splitInclusive(text string) []string {
	var words []string
	start := 0
	inSpace := false

	for i, r := range text {
		space := unicode.IsSpace(r)
		if inSpace && !space {
			words = append(words, text[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(text) {
		words = append(words, text[start:])
	}

	return words
}
