package main

import (
	"bytes"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/dacharyc/lcsdiff"
	"github.com/dacharyc/lcsdiff/internal/config"
	"github.com/dacharyc/lcsdiff/internal/textio"
)

// Exit codes, as used by diff(1).
const (
	exitSame    = 0
	exitDiffer  = 1
	exitTrouble = 2
)

// exitError carries an exit code that is not a failure of the command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type rootFlags struct {
	configPath        string
	context           int
	strategy          string
	color             string
	ignoreCase        bool
	ignoreSpaceChange bool
	ignoreAllSpace    bool
	posixRanges       bool
	labels            []string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "lcsdiff [flags] FILE1 FILE2 [FILE1 FILE2 ...]",
		Short: "Print the unified diff of pairs of files",
		Long: `lcsdiff compares files line by line using a longest common subsequence
and prints the differences in unified format. Several pairs of files may be
given; they are compared concurrently and printed in order.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return fmt.Errorf("expected pairs of files, got %d arguments", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, lcsdiff.WithColor(cfg.UseColor(isTerminal(stdout))), lcsdiff.WithNewlineMarker(true))

			differ, err := diffPairs(args, f.labels, stdin, stdout, opts)
			if err != nil {
				return err
			}
			if differ {
				return &exitError{code: exitDiffer}
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/"+config.FileName+")")
	flags.IntVarP(&f.context, "unified", "U", lcsdiff.DefaultContext, "output NUM lines of unified context")
	flags.StringVar(&f.strategy, "strategy", lcsdiff.KuoCrossBinary.String(), "LCS search strategy: kcmod, kc, hs or hm")
	flags.StringVar(&f.color, "color", config.ColorAuto, "colorize output: auto, always or never")
	flags.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case differences in file contents")
	flags.BoolVarP(&f.ignoreSpaceChange, "ignore-space-change", "b", false, "ignore changes in the amount of white space")
	flags.BoolVarP(&f.ignoreAllSpace, "ignore-all-space", "w", false, "ignore all white space")
	flags.BoolVar(&f.posixRanges, "posix-ranges", false, "always print line counts in hunk headers")
	flags.StringArrayVar(&f.labels, "label", nil, "use LABEL instead of file name (may be given twice)")

	// glog registers -v, -logtostderr and friends on the standard flag set.
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			glog.V(1).Infof("no user config directory: %v", err)
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("unified") {
		cfg.Context = f.context
	}
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("color") {
		cfg.Color = f.color
	}
	if flags.Changed("ignore-case") {
		cfg.IgnoreCase = f.ignoreCase
	}
	if flags.Changed("ignore-space-change") {
		cfg.IgnoreSpaceChange = f.ignoreSpaceChange
	}
	if flags.Changed("ignore-all-space") {
		cfg.IgnoreAllSpace = f.ignoreAllSpace
	}
	if flags.Changed("posix-ranges") {
		cfg.POSIXRanges = f.posixRanges
	}
	if len(f.labels) > 2 {
		return nil, fmt.Errorf("--label given %d times, at most 2 allowed", len(f.labels))
	}
	return cfg, cfg.Validate()
}

// diffPairs compares each pair of files in args and writes the diffs to w
// in argument order. It reports whether any pair differs.
func diffPairs(args, labels []string, stdin io.Reader, w io.Writer, opts []lcsdiff.Option) (bool, error) {
	// Read every file up front so that "-" is consumed once even when it
	// appears in several pairs.
	sources := make(map[string]*textio.Source)
	for _, path := range args {
		if _, ok := sources[path]; ok {
			continue
		}
		src, err := textio.Open(path, stdin)
		if err != nil {
			return false, err
		}
		glog.V(1).Infof("Loaded %d lines from %s", len(src.Lines), path)
		sources[path] = src
	}

	outputs := make([]bytes.Buffer, len(args)/2)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for p := range outputs {
		from, to := *sources[args[2*p]], *sources[args[2*p+1]]
		if p == 0 {
			if len(labels) > 0 {
				from.Label = labels[0]
			}
			if len(labels) > 1 {
				to.Label = labels[1]
			}
		}
		g.Go(func() error {
			return diffPair(&outputs[p], &from, &to, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	differ := false
	for p := range outputs {
		if outputs[p].Len() > 0 {
			differ = true
		}
		if _, err := outputs[p].WriteTo(w); err != nil {
			return differ, err
		}
	}
	return differ, nil
}

func diffPair(w io.Writer, from, to *textio.Source, opts []lcsdiff.Option) error {
	hunks, err := lcsdiff.DiffHunks(from.Lines, to.Lines, opts...)
	if err != nil {
		return fmt.Errorf("%s and %s: %w", from.Label, to.Label, err)
	}
	glog.V(1).Infof("%s and %s: %d hunks", from.Label, to.Label, len(hunks))
	return lcsdiff.WriteUnified(w, from.Lines, to.Lines, hunks,
		&lcsdiff.FileHeader{Label: from.Label, ModTime: from.ModTime},
		&lcsdiff.FileHeader{Label: to.Label, ModTime: to.ModTime},
		opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
