package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

const bannerTagline = "pizza dough, by the numbers"

// RenderBanner returns the startup art plus tagline, both centred for the
// current terminal width. Narrow terminals get the art flush left rather
// than clipped.
func RenderBanner() string {
	width := termWidth()
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	artW := 0
	for _, l := range lines {
		if len(l) > artW {
			artW = len(l)
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerPad(width, artW))
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	b.WriteString(centerPad(width, len(bannerTagline)))
	b.WriteString(secondaryStyle.Render(bannerTagline))
	b.WriteByte('\n')
	return b.String()
}

// centerPad returns the left margin that centres content of the given
// width, or nothing when it doesn't fit.
func centerPad(termW, contentW int) string {
	if termW <= contentW {
		return ""
	}
	return strings.Repeat(" ", (termW-contentW)/2)
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
