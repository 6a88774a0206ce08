package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/immutable/collection"
	"github.com/pterm/pterm"
)

// session holds the history of sequences derived by interactive commands.
// Sequences are immutable, so undo simply drops the latest one.
type session struct {
	history []collection.Sequence[string]
	out     io.Writer
}

func newSession(lines collection.Sequence[string], out io.Writer) *session {
	return &session{history: []collection.Sequence[string]{lines}, out: out}
}

func (s *session) current() collection.Sequence[string] {
	return s.history[len(s.history)-1]
}

func (s *session) push(lines collection.Sequence[string]) {
	s.history = append(s.history, lines)
}

var errQuit = errors.New("quit")

// exec interprets a single command. Every traversal of the current sequence
// reads the file anew.
func (s *session) exec(cmdline string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(cmdline), " ")
	arg = strings.TrimSpace(arg)
	tracer().Debugf("command %q, argument %q", cmd, arg)
	cur := s.current()
	number := func() (int, error) {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s expects a non-negative number, got %q", cmd, arg)
		}
		return n, nil
	}
	switch cmd {
	case "":
		return nil
	case "grep":
		s.push(cur.Filter(func(line string) bool {
			return strings.Contains(line, arg)
		}))
	case "distinct":
		s.push(cur.Distinct())
	case "sort":
		if arg == "natural" {
			s.push(cur.Sort(collection.NaturalOrder))
		} else {
			s.push(cur.Sort(collection.Ascending[string]))
		}
	case "reverse":
		s.push(cur.Reverse())
	case "head", "tail":
		n, err := number()
		if err != nil {
			return err
		}
		if cmd == "head" {
			s.push(cur.Take(n))
		} else {
			s.push(cur.TakeEnd(n))
		}
	case "undo":
		if len(s.history) == 1 {
			return errors.New("nothing to undo")
		}
		s.history = s.history[:len(s.history)-1]
	case "count":
		fmt.Fprintln(s.out, cur.Size())
	case "show":
		cur.Foreach(func(line string) {
			fmt.Fprintln(s.out, line)
		})
	case "group":
		return printGroups(cur, s.out)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// interactive reads commands from a line editor until EOF or quit.
func interactive(lines collection.Sequence[string]) error {
	repl, err := readline.New("seq> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("commands: grep TEXT, distinct, sort [natural], reverse, head N, tail N, undo, count, show, group, quit")
	s := newSession(lines, repl.Stdout())
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err = s.exec(line); err == errQuit {
			return nil
		} else if err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}
