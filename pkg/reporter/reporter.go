// Package reporter prints extracted headlines as a numbered list.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	DefaultHeader   = "Munich headlines:"
	NoTitlesMessage = "No titles found (the page structure might have changed)."
)

type Reporter struct {
	w      io.Writer
	header string
	title  *color.Color
}

type Option func(*Reporter)

// WithHeader replaces the line printed above the list.
func WithHeader(header string) Option {
	return func(r *Reporter) {
		r.header = header
	}
}

// WithColor forces the header color on or off. By default it follows
// color.NoColor, which is set when stdout is not a terminal or NO_COLOR is set.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		if enabled {
			r.title.EnableColor()
		} else {
			r.title.DisableColor()
		}
	}
}

func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:      w,
		header: DefaultHeader,
		title:  color.New(color.FgCyan, color.Bold),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the fallback message for an empty list, otherwise the header,
// a blank line and one right-aligned numbered line per headline.
func (r *Reporter) Report(headlines []string) error {
	if len(headlines) == 0 {
		_, err := fmt.Fprintln(r.w, NoTitlesMessage)
		return err
	}

	if _, err := r.title.Fprintln(r.w, r.header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(r.w); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, headline := range headlines {
		if _, err := fmt.Fprintf(r.w, "%2d. %s\n", i+1, headline); err != nil {
			return fmt.Errorf("failed to write headline %d: %w", i+1, err)
		}
	}

	return nil
}
