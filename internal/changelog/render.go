package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable styling and line wrapping
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

var headerStyle = color.New(color.Bold).SprintFunc()

// Render writes the changelog newest-first: one header line per group,
// "{version} ({release timestamp})", followed by one line per change in
// chronological order, "- {timestamp}: [{type}] {comment}". Plain output
// is exactly this text; styled output additionally bolds headers and
// wraps long change lines to the terminal width.
func (cl *ChangeLog) Render(w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for _, group := range cl.groups {
		if err := renderGroup(group, w, opts, width); err != nil {
			return fmt.Errorf("rendering version %s: %w", group.Version.String(), err)
		}
	}
	return nil
}

func renderGroup(group ChangeGroup, w io.Writer, opts FormatOptions, width int) error {
	header := fmt.Sprintf("%s (%s)", group.Version.String(), group.Release.Timestamp.Format(time.RFC3339))
	if !opts.Plain {
		header = headerStyle(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, change := range group.Changes {
		if err := renderChange(change, w, opts, width); err != nil {
			return err
		}
	}
	return nil
}

func renderChange(change Change, w io.Writer, opts FormatOptions, width int) error {
	prefix := fmt.Sprintf("- %s: ", change.Timestamp.Format(time.RFC3339))
	body := fmt.Sprintf("[%s] %s", change.Type, change.Comment)

	if !opts.Plain {
		body = wrapText(body, width-len(prefix), "    ")
	}
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, body)
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for
// continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}
		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
