package collection

import (
	"bufio"
	"io"
	"iter"
	"os"

	"github.com/npillmayer/immutable/result"
)

// Lines creates a lazy sequence of the lines of a text stream. open is called
// for every traversal. If a traversal stops early, the reader is closed through
// the cleanup protocol; otherwise it is closed at end of stream.
//
// Errors opening or reading the stream are delivered as the last element.
func Lines(open func() (io.ReadCloser, error)) Sequence[result.Result[string]] {
	return Lazy(func(register RegisterCleanup) iter.Seq[result.Result[string]] {
		return func(yield func(result.Result[string]) bool) {
			r, err := open()
			if err != nil {
				yield(result.Err[string](err))
				return
			}
			closed := false
			closeReader := func() error {
				if closed {
					return nil
				}
				closed = true
				return r.Close()
			}
			register(func() {
				if err := closeReader(); err != nil {
					tracer().Errorf("closing line source: %v", err)
				}
			})
			scanner := bufio.NewScanner(r)
			for scanner.Scan() {
				if !yield(result.Ok(scanner.Text())) {
					return
				}
			}
			err = scanner.Err()
			if cerr := closeReader(); err == nil {
				err = cerr
			}
			if err != nil {
				yield(result.Err[string](err))
			}
		}
	})
}

// LinesOf creates a lazy sequence of the lines of file path.
func LinesOf(path string) Sequence[result.Result[string]] {
	return Lines(func() (io.ReadCloser, error) {
		tracer().Debugf("opening %s", path)
		return os.Open(path)
	})
}
