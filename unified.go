package lcsdiff

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// TimeFormat is the layout of file header timestamps, as printed by GNU
// diff.
const TimeFormat = "2006-01-02 15:04:05.000000000 -0700"

// noNewline follows a last line that has no line terminator.
const noNewline = `\ No newline at end of file`

// FileHeader names one side of a unified diff.
type FileHeader struct {
	Label   string
	ModTime time.Time // omitted from the header when zero
}

// String returns the header text after the "---" or "+++" marker.
func (fh FileHeader) String() string {
	if fh.ModTime.IsZero() {
		return fh.Label
	}
	return fh.Label + "\t" + fh.ModTime.Format(TimeFormat)
}

// Unified compares two string slices and returns their unified diff
// without file headers. Identical inputs produce an empty string.
func Unified(a, b []string, opts ...Option) (string, error) {
	hunks, err := DiffHunks(a, b, opts...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := WriteUnified(&sb, a, b, hunks, nil, nil, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteUnified renders hunks of a and b as a unified diff. The "---" and
// "+++" lines are written only when from and to are both non-nil and there
// is at least one hunk.
func WriteUnified(w io.Writer, a, b []string, hunks []Hunk, from, to *FileHeader, opts ...Option) error {
	if len(hunks) == 0 {
		return nil
	}
	o := applyOptions(opts)
	p := newPalette(o.color)
	bw := bufio.NewWriter(w)

	if from != nil && to != nil {
		bw.WriteString(p.header.Sprintf("--- %s", from))
		bw.WriteByte('\n')
		bw.WriteString(p.header.Sprintf("+++ %s", to))
		bw.WriteByte('\n')
	}

	for _, h := range hunks {
		bw.WriteString(p.hunk.Sprint(h.header(o.posixRanges)))
		bw.WriteByte('\n')
		for _, e := range h.Edits {
			switch e.Type {
			case Equal:
				writeLine(bw, nil, ' ', a[e.ALine-1], o.newlineMarker)
			case Delete:
				writeLine(bw, p.del, '-', a[e.ALine-1], o.newlineMarker)
			case Insert:
				writeLine(bw, p.ins, '+', b[e.BLine-1], o.newlineMarker)
			}
		}
	}

	// bufio.Writer keeps the first write error; Flush reports it.
	return bw.Flush()
}

func writeLine(w *bufio.Writer, c *color.Color, prefix byte, text string, marker bool) {
	body, terminated := text, false
	if marker {
		body, terminated = strings.CutSuffix(text, "\n")
	}
	if c == nil {
		w.WriteByte(prefix)
		w.WriteString(body)
	} else {
		// Sprint resets the color even when color.NoColor is set.
		w.WriteString(c.Sprint(string(prefix) + body))
	}
	w.WriteByte('\n')
	if marker && !terminated {
		w.WriteString(noNewline)
		w.WriteByte('\n')
	}
}

// palette holds the colors used for each kind of output line.
type palette struct {
	header, hunk, del, ins *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		header: color.New(color.Bold),
		hunk:   color.New(color.FgCyan),
		del:    color.New(color.FgRed),
		ins:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.header, p.hunk, p.del, p.ins} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
