package helpers

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func termWidth(fd uintptr) int {
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 80
	}
	return MaxInt(80, MinInt(120, width))
}

// CreateProgressBar draws a bar onto w. A bar that is not visible still
// counts, it just never renders.
func CreateProgressBar(total int, label string, w io.Writer, fd uintptr, visible bool) ProgressBar {
	p := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetWidth(termWidth(fd)/2),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() {
			if visible {
				fmt.Fprintln(w)
			}
		}),
	)
	return ProgressBar{
		func(i int) {
			_ = p.Set(i)
		},
		func(i int) {
			_ = p.Add(i)
		},
		func() {
			_ = p.Finish()
		},
	}
}
