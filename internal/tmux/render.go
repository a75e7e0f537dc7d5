// Package tmux renders build counters as tmux status-line segments.
package tmux

import (
	"fmt"

	"github.com/verte-zerg/buildstreak/internal/model"
)

// Band identifies which color template a counter is rendered with.
type Band int

const (
	// BandTie is used when success and fail are equal.
	BandTie Band = iota
	// BandSuccess is used when success leads.
	BandSuccess
	// BandFail is used when fail leads.
	BandFail
)

const (
	statusBg    = 234
	tieColour   = 66
	successBg   = 237
	successFg   = 255
	failColour  = 196
	segmentTmpl = "#[fg=colour%[1]d,bg=colour%[3]d]#[bg=colour%[1]d,fg=colour%[2]d] %[4]d | %[5]d #[fg=colour%[3]d,bg=colour%[1]d]"
)

func (b Band) String() string {
	switch b {
	case BandTie:
		return "tie"
	case BandSuccess:
		return "success"
	case BandFail:
		return "fail"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// BandOf selects the band for a counter.
func BandOf(c model.Counter) Band {
	switch {
	case c.Success > c.Fail:
		return BandSuccess
	case c.Success < c.Fail:
		return BandFail
	default:
		return BandTie
	}
}

// Render returns the status segment for c.
func Render(c model.Counter) string {
	switch BandOf(c) {
	case BandSuccess:
		return segment(successBg, successFg, c)
	case BandFail:
		return segment(failColour, statusBg, c)
	default:
		return segment(tieColour, statusBg, c)
	}
}

func segment(bg, fg int, c model.Counter) string {
	return fmt.Sprintf(segmentTmpl, bg, fg, statusBg, c.Success, c.Fail)
}
