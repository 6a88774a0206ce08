/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(replacement, appending or removal of the last item) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by the original,
and creates a new incarnation of the path to the modified item only. Thus, most of the
structure/memory is shared between original and copy, transparently to clients.

The vector is a bit-partitioned trie of degree 2^bits with a separate tail buffer for
the rightmost items, as popularized by Clojure. Appending to or removing from the end is
amortized O(1); indexed access and replacement are O(log_degree n).

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.vector'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.vector")
}
