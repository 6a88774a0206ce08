/*
Package collection implements immutable sequences, sets and maps.

Every operation returning a collection returns a new value; receivers are never
modified. A Sequence is backed by one of three strategies, selected by its
constructor and invisible to clients otherwise:

■ eager: values are held in a persistent vector (package persistent/vector).
Operations compute their results immediately.

■ deferred: values are pulled from a one-shot source function. Pulled values
are memoized and shared by every sequence derived from the source, so the
source is consumed at most once. Derived sequences pull on demand and stay
unrealized until a terminal operation needs them.

■ lazy: values are produced by a generator factory, invoked afresh for every
traversal. Generators may register cleanup functions, which run exactly once if
a traversal is stopped before the generator reaches its natural end, e.g. when
Find has a match or Take is satisfied. They do not run on natural end; releasing
resources there is the generator's own business:

	seq := collection.Lazy(func(register collection.RegisterCleanup) iter.Seq[string] {
	    return func(yield func(string) bool) {
	        f, err := os.Open(name)
	        if err != nil {
	            log.Printf("cannot read %s: %v", name, err)
	            return
	        }
	        register(func() { f.Close() })
	        scanner := bufio.NewScanner(f)
	        for scanner.Scan() {
	            if !yield(scanner.Text()) {
	                return
	            }
	        }
	        f.Close()
	    }
	})

Lines and LinesOf are ready-made line sources of this kind, which deliver
errors as elements of type result.Result instead of dropping them.

Absence of values is signalled by maybe.Maybe, never by zero values or
panics. Misuse of an API where a result is required (grouping an empty
collection, requiring a match which does not exist, narrowing elements of the
wrong type) is reported as *Error.

Sets and Maps are built on top of Sequences. Lookups are linear; elements are
compared by immutable.Equal, keys are never hashed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package collection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.collection'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.collection")
}
