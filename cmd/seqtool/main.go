package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/immutable/collection"
	"github.com/npillmayer/immutable/result"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

type options struct {
	grep     string
	distinct bool
	sort     bool
	head     int
	tail     int
	group    bool
	repl     bool
}

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	var opts options
	flag.StringVar(&opts.grep, "grep", "", "keep lines containing text")
	flag.BoolVar(&opts.distinct, "distinct", false, "drop repeated lines")
	flag.BoolVar(&opts.sort, "sort", false, "sort lines")
	flag.IntVar(&opts.head, "head", 0, "output the first n lines only")
	flag.IntVar(&opts.tail, "tail", 0, "output the last n lines only")
	flag.BoolVar(&opts.group, "group", false, "group lines by their first character")
	flag.BoolVar(&opts.repl, "i", false, "interactive mode")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	if flag.NArg() != 1 {
		pterm.Error.Println("expected exactly one file argument")
		flag.Usage()
		os.Exit(2)
	}
	var err error
	if opts.repl {
		lines, readErr := source(flag.Arg(0))
		err = interactive(pipeline(lines, opts))
		if err == nil {
			err = *readErr
		}
	} else {
		err = run(flag.Arg(0), opts, os.Stdout)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// run streams the lines of file path through the pipeline configured by opts
// and writes them to w.
func run(path string, opts options, w io.Writer) error {
	lines, readErr := source(path)
	lines = pipeline(lines, opts)
	if opts.group {
		if err := printGroups(lines, w); err != nil && *readErr == nil {
			return err
		}
	} else {
		lines.Foreach(func(line string) {
			fmt.Fprintln(w, line)
		})
	}
	return *readErr
}

// source creates a lazy sequence of the lines of file path. Read errors are
// dropped from the sequence and stored in the error variable returned.
func source(path string) (collection.Sequence[string], *error) {
	readErr := new(error)
	lines := collection.MapSeq(collection.LinesOf(path).Filter(func(r result.Result[string]) bool {
		if r.IsOk() {
			return true
		}
		_, err := result.Get(r)
		*readErr = fmt.Errorf("reading %s: %w", path, err)
		return false
	}), func(r result.Result[string]) string {
		return r.WithDefault("")
	})
	return lines, readErr
}

func pipeline(lines collection.Sequence[string], opts options) collection.Sequence[string] {
	if opts.grep != "" {
		lines = lines.Filter(func(line string) bool {
			return strings.Contains(line, opts.grep)
		})
	}
	if opts.distinct {
		lines = lines.Distinct()
	}
	if opts.sort {
		lines = lines.Sort(collection.Ascending[string])
	}
	if opts.head > 0 {
		lines = lines.Take(opts.head)
	}
	if opts.tail > 0 {
		lines = lines.TakeEnd(opts.tail)
	}
	tracer().Debugf("pipeline configured: %+v", opts)
	return lines
}

func printGroups(lines collection.Sequence[string], w io.Writer) error {
	groups, err := collection.GroupSeq(lines, func(line string) rune {
		r, _ := utf8.DecodeRuneInString(line)
		return r
	})
	if err != nil {
		return err
	}
	groups.Foreach(func(r rune, group collection.Sequence[string]) {
		pterm.Info.Println(fmt.Sprintf("%q (%d)", r, group.Size()))
		group.Foreach(func(line string) {
			fmt.Fprintln(w, "   "+line)
		})
	})
	return nil
}
