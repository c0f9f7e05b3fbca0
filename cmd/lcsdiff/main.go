// Command lcsdiff prints the unified diff of pairs of files.
//
// Usage:
//
//	lcsdiff [flags] FILE1 FILE2 [FILE1 FILE2 ...]
//
// Either file of a pair may be "-" for standard input. The exit status is 0
// when every pair is identical, 1 when some pair differs and 2 on trouble.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	glog.Flush()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	var ee *exitError
	switch {
	case err == nil:
		return exitSame
	case errors.As(err, &ee):
		return ee.code
	default:
		fmt.Fprintf(stderr, "lcsdiff: %v\n", err)
		return exitTrouble
	}
}
