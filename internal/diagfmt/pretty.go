package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"clangview/internal/diag"
	"clangview/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note, fix, del, add *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Faint),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgGreen, color.Bold),
		note:   mk(color.FgCyan),
		fix:    mk(color.FgMagenta),
		del:    mk(color.FgRed),
		add:    mk(color.FgGreen),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty writes the diagnostics of bag in human-readable form. Sort the bag
// first for stable output. Each entry is printed as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source context with the span underlined, then notes and
// fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	msg := d.Message
	if d.Option != "" {
		msg += " [" + d.Option + "]"
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, opts.PathMode, fs), start.Line, start.Col,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		msg)
	writeContext(w, fs, d.Primary, int(opts.Context), opts.Width, p)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				formatPath(nf, opts.PathMode, fs), ns.Line, ns.Col, n.Msg)
			writeContext(w, fs, n.Span, 0, opts.Width, p)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.fix.Sprint("fix:"), fix.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fix.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, l := range preview.before {
					fmt.Fprintf(w, "    %s\n", p.del.Sprint("- "+clip(l, opts.Width)))
				}
				for _, l := range preview.after {
					fmt.Fprintf(w, "    %s\n", p.add.Sprint("+ "+clip(l, opts.Width)))
				}
			}
		}
	}
}

// writeContext prints the line holding sp with ctx lines around it and a
// caret line under the span.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, ctx int, width uint8, p palette) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	if int(start.Line) > f.LineCount() {
		return
	}
	first := max(int(start.Line)-ctx, 1)
	last := min(int(start.Line)+ctx, f.LineCount())
	numWidth := len(fmt.Sprint(last))
	blank := strings.Repeat(" ", numWidth)

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) // #nosec G115 -- bounded by LineCount
		fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprintf("%*d", numWidth, ln), p.gutter.Sprint("|"), clip(text, width))
		if ln != int(start.Line) {
			continue
		}
		endCol := uint32(len(text)) + 1 // #nosec G115 -- a line of a checked file
		if end.Line == start.Line {
			endCol = min(end.Col, endCol)
		}
		fmt.Fprintf(w, " %s %s %s\n", blank, p.gutter.Sprint("|"), p.caret.Sprint(caretLine(text, start.Col, endCol)))
	}
}

// caretLine underlines columns [from, to) of text. Tabs in the prefix are
// kept so the carets line up with the source in any tab width.
func caretLine(text string, from, to uint32) string {
	from = max(from, 1)
	if int(from-1) > len(text) {
		from = uint32(len(text)) + 1 // #nosec G115 -- a line of a checked file
	}
	var b strings.Builder
	for _, r := range text[:from-1] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	n := 1
	if to > from && int(to-1) <= len(text) {
		n = max(runewidth.StringWidth(text[from-1:to-1]), 1)
	}
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", n-1))
	return b.String()
}

func clip(line string, width uint8) string {
	if width == 0 || runewidth.StringWidth(line) <= int(width) {
		return line
	}
	return runewidth.Truncate(line, int(width), "…")
}
