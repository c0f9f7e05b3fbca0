// Package textio reads files into the line sequences compared by lcsdiff.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Stdin is the path that names standard input.
const Stdin = "-"

// ErrBinary is returned for input containing a NUL byte.
var ErrBinary = errors.New("textio: binary input")

// Source is one side of a comparison: its label, its lines and the time it
// was last modified.
type Source struct {
	Label   string
	Lines   []string
	ModTime time.Time
}

// Open reads the file at path, or stdin when path is "-". Lines keep their
// "\n" terminators; only the last line may lack one.
func Open(path string, stdin io.Reader) (*Source, error) {
	if path == Stdin {
		lines, err := ReadLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &Source{Label: path, Lines: lines, ModTime: time.Now()}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Source{Label: path, Lines: lines, ModTime: info.ModTime()}, nil
}

// ReadLines splits r into lines, keeping each line's "\n".
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if strings.IndexByte(line, 0) >= 0 {
				return nil, fmt.Errorf("line %d: %w", len(lines)+1, ErrBinary)
			}
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
